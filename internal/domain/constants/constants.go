package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNoop   = "noop"
)

// Notification topics
const (
	AdminOrdersTopic = "admin-orders"
	UserTopicPrefix  = "user-"
)

// Upload prefixes inside the blob bucket
const (
	PaymentScreenshotPrefix = "order-payments"
	PaymentQRPrefix         = "payment-qr"
	HeroBannerPrefix        = "hero-banners"
)

// IdempotencyKeyHeader is the request header deduplicating order placement.
const IdempotencyKeyHeader = "Idempotency-Key"
