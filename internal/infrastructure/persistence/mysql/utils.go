package mysql

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateError 判断是否为唯一索引冲突
// MySQL: 1062 Duplicate entry 'xxx' for key 'yyy'
// SQLite: UNIQUE constraint failed（测试环境）
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern 生成不区分大小写的LIKE模式，配合 ESCAPE '!' 使用
func containsPattern(keyword string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(keyword)) + "%"
}
