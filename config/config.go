package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App      `json:"app" yaml:"app"`
	Redis    *Redis    `json:"redis" yaml:"redis"`
	Database *Database `json:"database" yaml:"database"`
	Jwt      *Jwt      `json:"jwt" yaml:"jwt"`
	Server   *Server   `json:"server" yaml:"server"`
	Board    *Board    `json:"board" yaml:"board"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {
	// .env 不存在时直接使用系统环境变量
	_ = godotenv.Load()

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}

	return conf
}

// Parse 解析 yaml 内容并应用环境变量覆盖
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}

	conf.applyDefaults()
	if err := conf.applyEnv(); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverMySQL
	}
	if c.Redis == nil {
		c.Redis = &Redis{}
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Jwt.Algorithm == "" {
		c.Jwt.Algorithm = "HS256"
	}
	if c.Jwt.ExpireMinutes == 0 {
		c.Jwt.ExpireMinutes = 60
	}
	if c.Board == nil {
		c.Board = &Board{}
	}
}

// 兼容旧版本的环境变量命名
func (c *Config) applyEnv() error {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.Dsn = v
	}
	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		c.Jwt.Secret = v
	}
	if v := os.Getenv("ALGORITHM"); v != "" {
		c.Jwt.Algorithm = v
	}
	if v := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES: %w", err)
		}
		c.Jwt.ExpireMinutes = minutes
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Jwt.Secret == "" {
		return errors.New("jwt.secret 不能为空")
	}
	if c.Database.Dsn == "" {
		return errors.New("database.dsn 不能为空")
	}
	switch c.Database.Driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("不支持的数据库驱动: %s", c.Database.Driver)
	}
	return nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
