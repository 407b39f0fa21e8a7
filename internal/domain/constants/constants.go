package constants

// Auth provider types
const (
	AuthProviderGoTrue   = "gotrue"
	AuthProviderFirebase = "firebase"
)

// Lead notification provider types
const (
	NotificationProviderWebhook = "webhook"
	NotificationProviderGoogle  = "google"
	NotificationProviderFCM     = "fcm"
)
