package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Dataset         Dataset         `mapstructure:",squash"`
	Columns         Columns         `mapstructure:",squash"`
	Dashboard       Dashboard       `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	DatasetRefresh  DatasetRefresh  `mapstructure:",squash"`
	RankingSnapshot RankingSnapshot `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Enabled indica se a persistência do histórico de ranking está configurada
func (d Database) Enabled() bool {
	return d.URL != ""
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Dataset descreve o arquivo exportado com os registros de serviço
type Dataset struct {
	Path             string `mapstructure:"dataset_path"`
	Delimiter        string `mapstructure:"dataset_delimiter"` // "auto", ";", "," ou "\t"
	Encoding         string `mapstructure:"dataset_encoding"`  // "auto", "utf-8", "utf-8-sig" ou "latin1"
	DecimalSeparator string `mapstructure:"dataset_decimal_separator"`
	CatalogFile      string `mapstructure:"indicator_catalog_file"`
}

// Columns lista os nomes aceitos para cada campo, em ordem de preferência
type Columns struct {
	Period       []string `mapstructure:"column_period"`
	Indicator    []string `mapstructure:"column_indicator"`
	SubIndicator []string `mapstructure:"column_sub_indicator"`
	Amount       []string `mapstructure:"column_amount"`
	Dealer       []string `mapstructure:"column_dealer"`
	Group        []string `mapstructure:"column_group"`
	Region       []string `mapstructure:"column_region"`
}

type Dashboard struct {
	TopN             int    `mapstructure:"dashboard_top_n"`
	ExcludeOutliers  bool   `mapstructure:"dashboard_exclude_outliers"`
	DefaultIndicator string `mapstructure:"dashboard_default_indicator"`
}

type DatasetRefresh struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
}

type RankingSnapshot struct {
	CronSchedule string        `mapstructure:"ranking_snapshot_cron"`
	Enabled      bool          `mapstructure:"ranking_snapshot_enabled"`
	Timeout      time.Duration `mapstructure:"ranking_snapshot_timeout"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("DATASET_PATH", "ger_servicos.csv")
	viper.SetDefault("DATASET_DELIMITER", "auto")
	viper.SetDefault("DATASET_ENCODING", "auto")
	viper.SetDefault("DATASET_DECIMAL_SEPARATOR", ",")
	viper.SetDefault("INDICATOR_CATALOG_FILE", "")

	// Nomes de colunas observados nas diferentes exportações
	viper.SetDefault("COLUMN_PERIOD", "periodo_dt,periodo")
	viper.SetDefault("COLUMN_INDICATOR", "titulo,metrica_id")
	viper.SetDefault("COLUMN_SUB_INDICATOR", "sub_titulo")
	viper.SetDefault("COLUMN_AMOUNT", "realizado_num,realizado")
	viper.SetDefault("COLUMN_DEALER", "chave,descr_dealer")
	viper.SetDefault("COLUMN_GROUP", "grupo")
	viper.SetDefault("COLUMN_REGION", "REGIAO,STATE")

	viper.SetDefault("DASHBOARD_TOP_N", 15)
	viper.SetDefault("DASHBOARD_EXCLUDE_OUTLIERS", true)
	viper.SetDefault("DASHBOARD_DEFAULT_INDICATOR", "R$ Estoque Obsoleto")

	viper.SetDefault("DATASET_REFRESH_CRON", "*/5 * * * *") // A cada 5 minutos verifica se o arquivo mudou
	viper.SetDefault("DATASET_REFRESH_ENABLED", true)

	viper.SetDefault("RANKING_SNAPSHOT_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("RANKING_SNAPSHOT_ENABLED", false)
	viper.SetDefault("RANKING_SNAPSHOT_TIMEOUT", "2m")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate confere as opções do arquivo de dados que não podem ser detectadas automaticamente
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Dataset.Path) == "" {
		return fmt.Errorf("config: DATASET_PATH é obrigatório")
	}

	switch c.Dataset.DecimalSeparator {
	case ",", ".":
	default:
		return fmt.Errorf("config: DATASET_DECIMAL_SEPARATOR inválido: %q", c.Dataset.DecimalSeparator)
	}

	if c.Dashboard.TopN <= 0 {
		c.Dashboard.TopN = 15
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
