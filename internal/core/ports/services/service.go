package services

// ServiceContainer holds instances of all the application services. Handlers
// receive this rather than concrete service types.
type ServiceContainer struct {
	User         UserSvcFacade
	Auth         AuthSvcFacade
	Verification VerificationSvcFacade
	WeChat       WeChatSvcFacade
}
