package config

// Board 论坛业务配置
type Board struct {
	// 搜索是否区分大小写，默认不区分
	SearchCaseSensitive bool `json:"search_case_sensitive" yaml:"search_case_sensitive"`
}
