package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"redry.com/roofmri/config"
	"redry.com/roofmri/handlers"
	"redry.com/roofmri/routes"
)

var (
	Version   = "dev"
	BuildTime = ""
)

func main() {
	versionFlag := flag.Bool("version", false, "Print version info and exit")
	seedFlag := flag.Bool("seed", false, "Reseed the database and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("Version:   %s\n", Version)
		fmt.Printf("BuildTime: %s\n", BuildTime)
		os.Exit(0)
	}

	db := config.Connect()

	if *seedFlag {
		if err := config.Reseed(db); err != nil {
			logrus.WithError(err).Fatal("seeding failed")
		}
		os.Exit(0)
	}

	if err := config.SeedDefaultUser(db); err != nil {
		logrus.WithError(err).Warn("default user seeding failed")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	sheets := handlers.NewSheetsService()
	if sheets == nil {
		logrus.Info("SHEETS_API_URL not set, sheet pricing routes disabled")
	}

	handler := enableCORS(routes.RegisterRoutes(db, sheets))
	logrus.WithField("port", port).Info("server starting")
	logrus.Fatal(http.ListenAndServe(":"+port, handler))
}

// enableCORS allows the configured frontend origins. With CORS_STRICT unset,
// unknown origins are logged and allowed so local tooling keeps working.
func enableCORS(next http.Handler) http.Handler {
	allowed := append(strings.Split(os.Getenv("APP_URL"), ","),
		"http://localhost:5173", "http://localhost:3000")
	strict := os.Getenv("CORS_STRICT") == "true"

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			if originAllowed(allowed, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
			} else if !strict {
				logrus.WithField("origin", origin).Warn("unlisted CORS origin allowed")
				w.Header().Set("Access-Control-Allow-Origin", origin)
			}
		}
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func originAllowed(allowed []string, origin string) bool {
	for _, a := range allowed {
		if a != "" && strings.TrimRight(a, "/") == strings.TrimRight(origin, "/") {
			return true
		}
	}
	return false
}
