package tracer

type Config struct {
	// ServiceName identifies this service in the tracing backend.
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv is the deployment environment ("development", "production").
	AppEnv string `yaml:"app_env" envconfig:"APP_ENV"`

	// EnableExport ships spans to the OTLP endpoint configured through the
	// standard OTEL_EXPORTER_OTLP_* environment variables.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`
}
