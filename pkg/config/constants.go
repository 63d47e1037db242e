package config

// EnvPrefix namespaces every environment variable read by Load.
const EnvPrefix = "FOODISBAE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "FOODISBAE_DB_DSN"
	EnvDBHost = "FOODISBAE_DB_HOST"
	EnvDBUser = "FOODISBAE_DB_USER"
	EnvDBName = "FOODISBAE_DB_NAME"
)

var discreteDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
