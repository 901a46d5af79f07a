package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "database:\n  host: db\n  port: 3306\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Catalog.PageSize)
	assert.Equal(t, 4, cfg.Catalog.SellerPageSize)
	assert.Equal(t, 2*time.Hour, cfg.JWT.AccessTokenExpire)
	assert.Equal(t, "mail.send", cfg.MQ.RoutingKey)
	assert.Equal(t, "db", cfg.Database.Host)
}

func TestLoadFile_EnvOverride(t *testing.T) {
	t.Setenv("MARKETPLACE_DATABASE_PASSWORD", "s3cret")
	t.Setenv("MARKETPLACE_CATALOG_PAGE_SIZE", "12")

	cfg, err := LoadFile(writeConfig(t, "database:\n  password: plain\ncatalog:\n  page_size: 5\n"))
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, 12, cfg.Catalog.PageSize)
}

func TestLoadFile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"端口非法", "server:\n  port: 70000\n", "无效的服务端口"},
		{"生产环境默认密钥", "server:\n  mode: release\n", "生产环境必须修改JWT密钥"},
		{"分页大小为0", "catalog:\n  page_size: 0\n", "分页大小必须大于0"},
		{"启用MQ但没有地址", "mq:\n  enabled: true\n", "mq.url"},
		{"启用追踪但没有地址", "tracing:\n  enabled: true\n", "tracing.endpoint"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.content))
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "localhost", Port: 3306, User: "root", Password: "pw", DBName: "marketplace",
		Charset: "utf8mb4", ParseTime: true, Loc: "Asia/Shanghai",
	}
	assert.Equal(t,
		"root:pw@tcp(localhost:3306)/marketplace?charset=utf8mb4&parseTime=true&loc=Asia%2FShanghai",
		d.DSN())
}
