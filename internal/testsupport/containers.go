// Package testsupport starts the database and Authorizer containers used by the
// integration tests and the standalone testcontainers command.
// Settings come from the environment, usually loaded from a .env file.
package testsupport

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/localnerve/jam-build-catalog/internal/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Logf receives progress messages. testing.T.Logf and log.Printf both fit.
type Logf func(format string, args ...any)

// Options describes the containers to start.
type Options struct {
	DBType         string
	DBImage        string
	DBHost         string
	DBPort         string
	DBDatabase     string
	DBUser         string
	DBPassword     string
	DBRootPassword string

	WithAuthorizer   bool
	AuthzImage       string
	AuthzPort        string
	AuthzClientID    string
	AuthzAdminSecret string
	AuthzDatabase    string
}

// OptionsFromEnv reads Options from the environment with test defaults.
func OptionsFromEnv() Options {
	dbType := getEnv("DB_TYPE", "mariadb")
	defaultImage, defaultPort := "mariadb:11", "3306"
	if dbType == "postgres" {
		defaultImage, defaultPort = "postgres:17-alpine", "5432"
	}
	return Options{
		DBType:           dbType,
		DBImage:          getEnv("DB_IMAGE", defaultImage),
		DBHost:           getEnv("DB_HOST", "catalogdb"),
		DBPort:           getEnv("DB_PORT", defaultPort),
		DBDatabase:       getEnv("DB_DATABASE", "catalog"),
		DBUser:           getEnv("DB_USER", "catalog"),
		DBPassword:       getEnv("DB_PASSWORD", "catalog-password"),
		DBRootPassword:   getEnv("DB_ROOT_PASSWORD", "root-password"),
		WithAuthorizer:   os.Getenv("AUTHZ_IMAGE") != "",
		AuthzImage:       os.Getenv("AUTHZ_IMAGE"),
		AuthzPort:        getEnv("AUTHZ_PORT", "9010"),
		AuthzClientID:    os.Getenv("AUTHZ_CLIENT_ID"),
		AuthzAdminSecret: os.Getenv("AUTHZ_ADMIN_SECRET"),
		AuthzDatabase:    getEnv("AUTHZ_DATABASE", "authorizer"),
	}
}

// Containers holds the started containers and their host-mapped endpoints.
type Containers struct {
	Network    *testcontainers.DockerNetwork
	DB         testcontainers.Container
	Authorizer testcontainers.Container

	DBHost    string
	DBPort    string
	AuthzURL  string
	options   Options
	terminate []func(context.Context) error
}

// DockerAvailable reports whether a Docker daemon answers.
func DockerAvailable(ctx context.Context) bool {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false
	}
	defer cli.Close()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err = cli.Ping(ctx)
	return err == nil
}

// Start creates a network, the database container and, when configured, the
// Authorizer container. On error everything already started is terminated.
func Start(ctx context.Context, opts Options, logf Logf) (*Containers, error) {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	tc := &Containers{options: opts}

	nw, err := network.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create network: %w", err)
	}
	tc.Network = nw
	tc.terminate = append(tc.terminate, func(ctx context.Context) error { return nw.Remove(ctx) })

	if err := tc.startDB(ctx, logf); err != nil {
		tc.Terminate(ctx, logf)
		return nil, err
	}

	if opts.WithAuthorizer {
		if err := tc.startAuthorizer(ctx, logf); err != nil {
			tc.Terminate(ctx, logf)
			return nil, err
		}
	}

	return tc, nil
}

func (tc *Containers) startDB(ctx context.Context, logf Logf) error {
	opts := tc.options
	port, err := nat.NewPort("tcp", opts.DBPort)
	if err != nil {
		return fmt.Errorf("failed to create DB port: %w", err)
	}

	db, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        opts.DBImage,
			ExposedPorts: []string{string(port)},
			Env:          dbInitEnv(opts),
			WaitingFor:   wait.ForListeningPort(port).WithStartupTimeout(90 * time.Second),
			Networks:     []string{tc.Network.Name},
			NetworkAliases: map[string][]string{
				tc.Network.Name: {opts.DBHost},
			},
		},
		Started: true,
	})
	if err != nil {
		return fmt.Errorf("failed to start database: %w", err)
	}
	tc.DB = db
	tc.terminate = append([]func(context.Context) error{func(ctx context.Context) error { return db.Terminate(ctx) }}, tc.terminate...)

	host, err := db.Host(ctx)
	if err != nil {
		return err
	}
	mapped, err := db.MappedPort(ctx, port)
	if err != nil {
		return err
	}
	tc.DBHost, tc.DBPort = host, mapped.Port()
	logf("DB_HOST=%s DB_PORT=%s", tc.DBHost, tc.DBPort)

	if opts.WithAuthorizer && opts.DBType != "postgres" {
		return tc.createAuthorizerDatabase(ctx)
	}
	return nil
}

// createAuthorizerDatabase gives the Authorizer its own schema on MySQL and MariaDB.
func (tc *Containers) createAuthorizerDatabase(ctx context.Context) error {
	dsn := fmt.Sprintf("root:%s@tcp(%s:%s)/", tc.options.DBRootPassword, tc.DBHost, tc.DBPort)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to connect for setup: %w", err)
	}
	defer db.Close()

	for i := 0; i < 30; i++ {
		if err = db.PingContext(ctx); err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		return fmt.Errorf("database not ready after 30 seconds: %w", err)
	}

	if _, err := db.ExecContext(ctx, fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", tc.options.AuthzDatabase)); err != nil {
		return fmt.Errorf("failed to create %s: %w", tc.options.AuthzDatabase, err)
	}
	return nil
}

func (tc *Containers) startAuthorizer(ctx context.Context, logf Logf) error {
	opts := tc.options
	port, err := nat.NewPort("tcp", opts.AuthzPort)
	if err != nil {
		return fmt.Errorf("failed to create Authorizer port: %w", err)
	}

	dbURL := fmt.Sprintf("root:%s@tcp(%s:%s)/%s", opts.DBRootPassword, opts.DBHost, opts.DBPort, opts.AuthzDatabase)
	if opts.DBType == "postgres" {
		dbURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", opts.DBUser, opts.DBPassword, opts.DBHost, opts.DBPort, opts.DBDatabase)
	}

	authz, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        opts.AuthzImage,
			ExposedPorts: []string{string(port)},
			Env: map[string]string{
				"ENV":           "production",
				"CLIENT_ID":     opts.AuthzClientID,
				"PORT":          opts.AuthzPort,
				"DATABASE_TYPE": opts.DBType,
				"DATABASE_NAME": opts.AuthzDatabase,
				"DATABASE_URL":  dbURL,
				"ADMIN_SECRET":  opts.AuthzAdminSecret,
				"ROLES":         "admin,user",
				"DEFAULT_ROLES": "user",
			},
			WaitingFor: wait.ForLog("Authorizer running at PORT:").WithStartupTimeout(30 * time.Second),
			Networks:   []string{tc.Network.Name},
			NetworkAliases: map[string][]string{
				tc.Network.Name: {"authorizer"},
			},
		},
		Started: true,
	})
	if err != nil {
		return fmt.Errorf("failed to start Authorizer: %w", err)
	}
	tc.Authorizer = authz
	tc.terminate = append([]func(context.Context) error{func(ctx context.Context) error { return authz.Terminate(ctx) }}, tc.terminate...)

	host, err := authz.Host(ctx)
	if err != nil {
		return err
	}
	mapped, err := authz.MappedPort(ctx, port)
	if err != nil {
		return err
	}
	tc.AuthzURL = fmt.Sprintf("http://%s:%s", host, mapped.Port())
	logf("AUTHZ_URL=%s", tc.AuthzURL)
	return nil
}

// Config returns a service configuration pointing at the started containers.
func (tc *Containers) Config() *config.Config {
	cfg := &config.Config{
		Port:               "3000",
		LogMode:            "development",
		DBType:             tc.options.DBType,
		DBHost:             tc.DBHost,
		DBPort:             tc.DBPort,
		DBDatabase:         tc.options.DBDatabase,
		DBUser:             tc.options.DBUser,
		DBPassword:         tc.options.DBPassword,
		DBConnectionLimit:  5,
		DBLogLevel:         "warn",
		AuthzDisabled:      tc.AuthzURL == "",
		AuthzURL:           tc.AuthzURL,
		AuthzClientID:      tc.options.AuthzClientID,
		AuthzAdminRole:     "admin",
		QueryStatsCapacity: 100,
	}
	return cfg
}

// Terminate stops every started container and removes the network.
func (tc *Containers) Terminate(ctx context.Context, logf Logf) {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	for _, stop := range tc.terminate {
		if err := stop(ctx); err != nil {
			logf("terminate failed: %v", err)
		}
	}
	tc.terminate = nil
}

func dbInitEnv(opts Options) map[string]string {
	switch opts.DBType {
	case "postgres":
		return map[string]string{
			"POSTGRES_PASSWORD": opts.DBPassword,
			"POSTGRES_USER":     opts.DBUser,
			"POSTGRES_DB":       opts.DBDatabase,
		}
	default:
		return map[string]string{
			"MYSQL_ROOT_PASSWORD":   opts.DBRootPassword,
			"MARIADB_ROOT_PASSWORD": opts.DBRootPassword,
			"MYSQL_DATABASE":        opts.DBDatabase,
			"MYSQL_USER":            opts.DBUser,
			"MYSQL_PASSWORD":        opts.DBPassword,
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
