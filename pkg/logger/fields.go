package logger

// 统一的日志字段命名常量
// 用于确保整个项目中日志字段命名的一致性，便于日志查询和分析
const (
	// FieldUID 用户 ID 字段
	FieldUID = "uid"

	// FieldNoteID 笔记 ID 字段
	FieldNoteID = "noteId"

	// FieldView 视图名称字段
	FieldView = "view"

	// FieldCollection 智能集合 ID 字段
	FieldCollection = "collection"

	// FieldStorageKey 存储键字段
	FieldStorageKey = "storageKey"

	// FieldCount 数量字段
	FieldCount = "count"

	// FieldDuration 耗时字段
	FieldDuration = "duration"

	// FieldMethod 方法名称字段
	FieldMethod = "method"

	// FieldError 错误信息字段
	FieldError = "error"
)
