package messages

const (
	MsgLoginRequired       = "loginRequired"
	MsgRegistrationSuccess = "registrationSuccess"
	MsgDuplicateUser       = "duplicateUser"
	MsgInvalidCredentials  = "invalidCredentials"
	MsgWelcomeBack         = "welcomeBack"
	MsgTaskCreated         = "taskCreated"
	MsgTaskDeleted         = "taskDeleted"
	MsgTaskMarked          = "taskMarked"
	MsgTaskNotFound        = "taskNotFound"
	MsgInvalidStatus       = "invalidStatus"
	MsgFailListTasks       = "failListTasks"
	MsgGenericError        = "genericError"
)
