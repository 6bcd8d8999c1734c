package code

// 公共状态码
var (
	Success                   = NewSuss(0, lang{en: "Success", zh_cn: "成功"})
	ErrorServerInternal       = NewError(100001, lang{en: "Internal Server Error", zh_cn: "服务内部错误"})
	ErrorInvalidParams        = NewError(100002, lang{en: "Invalid Params", zh_cn: "入参错误"})
	ErrorTooManyRequests      = NewError(100003, lang{en: "Too Many Requests", zh_cn: "请求过多"})
	ErrorNotUserAuthToken     = NewError(100004, lang{en: "Auth Token Not Provided", zh_cn: "未提供认证令牌"})
	ErrorInvalidUserAuthToken = NewError(100005, lang{en: "Auth Token Invalid Or Expired", zh_cn: "认证令牌无效或已过期"})
	ErrorNotFoundAPI          = NewError(100006, lang{en: "API Not Found", zh_cn: "接口不存在"})
	ErrorRequestTimeout       = NewError(100007, lang{en: "Request Timeout", zh_cn: "请求超时"})
	ErrorStorageFailure       = NewError(100008, lang{en: "Storage Write Failed", zh_cn: "存储写入失败"})
)

// 用户模块状态码
var (
	ErrorUserAlreadyExists    = NewError(200001, lang{en: "User Already Exists With This Email", zh_cn: "该邮箱已注册"})
	ErrorUserNotFound         = NewError(200002, lang{en: "User Not Found", zh_cn: "用户不存在"})
	ErrorUserPasswordWrong    = NewError(200003, lang{en: "Invalid Password", zh_cn: "密码错误"})
	ErrorUserTokenGenerate    = NewError(200004, lang{en: "Token Generate Failed", zh_cn: "令牌生成失败"})
	ErrorUserRegisterDisabled = NewError(200005, lang{en: "Registration Is Disabled", zh_cn: "注册功能已关闭"})
)

// 笔记模块状态码
var (
	ErrorNoteNotFound      = NewError(300001, lang{en: "Note Not Found", zh_cn: "笔记不存在"})
	ErrorNoteImportInvalid = NewError(300002, lang{en: "Import Payload Is Not A Note Array", zh_cn: "导入内容不是笔记数组"})
	ErrorNoteViewInvalid   = NewError(300003, lang{en: "Unknown View Or Smart Collection", zh_cn: "未知视图或智能集合"})

	SuccessNoteImport = NewSuss(300100, lang{en: "Notes Imported", zh_cn: "笔记导入完成"})
)

// 番茄钟模块状态码
var (
	ErrorPomodoroInvalidDuration = NewError(400001, lang{en: "Pomodoro Duration Out Of Range", zh_cn: "番茄钟时长超出范围"})
)
