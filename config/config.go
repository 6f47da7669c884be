package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JwtSecret     string
	AdminPassword string
	DbHost        string
	DbPort        string
	DbUser        string
	DbPassword    string
	DbName        string
	ServerPort    string
	Issuer        string
	LootlabsURL   string
	GateIPDedup   bool
)

// DefaultLootlabsURL is the deployment link used when LOOTLABS_URL is
// not configured. It already carries a query string, so click_id is
// appended with '&'.
const DefaultLootlabsURL = "https://loot-link.com/s?M6BOhyGL"

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	AdminPassword = getEnv("ADMIN_PASSWORD", "admin")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "gate")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("Issuer", "gate")
	LootlabsURL = getEnv("LOOTLABS_URL", DefaultLootlabsURL)
	GateIPDedup, _ = strconv.ParseBool(getEnv("GATE_IP_DEDUP", "false"))

	if os.Getenv("DB_HOST") == "" || os.Getenv("DB_PASSWORD") == "" {
		log.Println("Warning: database environment is not fully set, falling back to local defaults")
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
