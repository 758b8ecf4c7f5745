package main

import (
	_ "embed"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tomz197/arcade/internal/config"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "web",
	})

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	page := renderPage(config.GetEnv("SSH_DISPLAY_HOST", "your-server.com"), config.GetEnv("SSH_PORT", "2222"))

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})

	addr := net.JoinHostPort(host, port)
	logger.Info("starting web server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// renderPage fills the SSH host and port into the landing page.
func renderPage(sshHost, sshPort string) string {
	return strings.NewReplacer("{{.SSHHost}}", sshHost, "{{.SSHPort}}", sshPort).Replace(htmlPage)
}
