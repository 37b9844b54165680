package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/schwarztim/CSC425/migrations"
)

// Утилита накатки встроенных миграций схемы БД.
//
// Использование:
//
//	migrate -dsn <postgres-dsn> up
//	migrate -dsn <postgres-dsn> down
//	migrate -dsn <postgres-dsn> force <version>
//
// Если -dsn не задан, берётся переменная окружения DATABASE_URL.
func main() {
	_ = godotenv.Load()

	dsn := flag.String("dsn", os.Getenv("DATABASE_URL"), "строка подключения к PostgreSQL")
	flag.Parse()

	if *dsn == "" {
		fmt.Fprintln(os.Stderr, "migrate: DATABASE_URL is not set and -dsn is empty")
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "up"
	}

	if err := run(*dsn, cmd, flag.Arg(1)); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

func run(dsn, cmd, arg string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("init postgres driver: %w", err)
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("init migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "force":
		var version int
		version, err = strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("force: invalid version %q", arg)
		}
		err = m.Force(version)
	default:
		return fmt.Errorf("unknown command %q (expected up, down or force)", cmd)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		fmt.Println("migrate: no change")
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", cmd, err)
	}

	fmt.Printf("migrate: %s applied\n", cmd)
	return nil
}
