package services

// ServiceContainer holds all the services and manages their dependencies.
type ServiceContainer struct {
	Currency   CurrencySvcFacade
	Rates      RateSvcFacade
	History    HistorySvcFacade
	Conversion ConversionSvcFacade
	Favorites  FavoriteSvcFacade
	Session    SessionSvcFacade
	Insight    InsightSvcFacade
	Notifier   NotifierSvc
}
