package common

const (
	OriginHeader                        = "Origin"
	AccessControlRequestMethodHeader    = "Access-Control-Request-Method"
	AccessControlRequestHeadersHeader   = "Access-Control-Request-Headers"
	AccessControlAllowOriginHeader      = "Access-Control-Allow-Origin"
	AccessControlAllowMethodsHeader     = "Access-Control-Allow-Methods"
	AccessControlAllowHeadersHeader     = "Access-Control-Allow-Headers"
	AccessControlAllowCredentialsHeader = "Access-Control-Allow-Credentials"

	WildcardOrigin = "*"
)
