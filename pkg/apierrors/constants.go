package apierrors

const (
	MsgFailListTodos        = "errorListTodos"
	MsgFailGetTodo          = "failGetTodo"
	MsgFailCreateTodo       = "failCreateTodo"
	MsgFailUpdateTodo       = "failUpdateTodo"
	MsgFailDeleteTodo       = "failDeleteTodo"
	MsgFailToggleTodo       = "failToggleTodo"
	MsgInvalidTodoID        = "invalidTodoID"
	MsgInvalidTodoPayload   = "invalidTodoPayload"
	MsgTodoNotFound         = "todoNotFound"
	MsgValidationFailed     = "validationFailed"
	MsgAuthRequired         = "authRequired"
	MsgNotAuthenticated     = "notAuthenticated"
	MsgInvalidCredentials   = "invalidCredentials"
	MsgInvalidAuthPayload   = "invalidAuthPayload"
	MsgUsernameTaken        = "usernameTaken"
	MsgFailRegister         = "failRegister"
	MsgFailLogin            = "failLogin"
	MsgFailLogout           = "failLogout"
	MsgLoggedOut            = "loggedOut"
	MsgFailAuthCheck        = "failAuthCheck"
	MsgFieldRequired        = "fieldRequired"
	MsgFieldInvalidType     = "fieldInvalidType"
	MsgFieldInvalidValue    = "fieldInvalidValue"
	MsgFieldInvalidCategory = "fieldInvalidCategory"
	MsgFieldTooLong         = "fieldTooLong"
	MsgFieldBeforeCreated   = "fieldBeforeCreatedAt"
)
