package logic

import "errors"

// 业务错误分类，handler层据此映射HTTP状态码
var (
	ErrNotFound  = errors.New("记录不存在")
	ErrConflict  = errors.New("记录已存在")
	ErrForbidden = errors.New("没有操作权限")
)
