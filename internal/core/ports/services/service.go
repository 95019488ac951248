package services

// ServiceContainer holds instances of all the application services. Handlers
// receive this at route registration and depend only on the facade interfaces.
type ServiceContainer struct {
	Client       ClientSvcFacade
	Park         ParkSvcFacade
	Employee     EmployeeSvcFacade
	Period       PeriodSvcFacade
	ServiceEntry ServiceEntrySvcFacade
	Payment      PaymentSvcFacade
	Summary      SummarySvcFacade
	User         UserSvcFacade
	Token        TokenSvcFacade
	GoogleOAuth  GoogleOAuthSvcFacade
}
