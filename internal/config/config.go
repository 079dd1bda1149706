package config

import (
	"log"
	"os"
)

type Config struct {
	Port        string
	DBDSN       string
	LogFile     string
	AMQPURL     string
	SubmitQueue string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "ventapos.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./ventapos.log"
	}
	// Empty AMQP_URL means documents are logged instead of published.
	amqpURL := os.Getenv("AMQP_URL")
	queue := os.Getenv("SUBMIT_QUEUE")
	if queue == "" {
		queue = "dte.submit"
	}

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile, AMQPURL: amqpURL, SubmitQueue: queue}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s SUBMIT_QUEUE=%s amqp=%v",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.SubmitQueue, cfg.AMQPURL != "")
	return cfg
}
