package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/foomo/contentserver/requests"
	"github.com/foomo/helpcenter-mcp/catalog"
	"github.com/foomo/helpcenter-mcp/importer"
	"github.com/foomo/helpcenter-mcp/mcp"
	"github.com/foomo/helpcenter-mcp/service"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func main() {
	// Define command line flags
	stdioMode := flag.Bool("stdio", true, "Run in stdio mode")
	httpAddr := flag.String("http", "", "HTTP server address (e.g., ':8080')")
	catalogPath := flag.String("catalog", "catalog.yaml", "Path to the catalog file (.yaml or .json)")

	// Import mode flags
	importMode := flag.Bool("import", false, "Build the catalog file from a content server and exit")
	contentServerURL := flag.String("content-server", "", "Content server URL to import from")
	baseURL := flag.String("base-url", "", "Base URL of the help center site")
	rootPath := flag.String("root", "/help", "Root path of the help center tree")
	selector := flag.String("selector", "main", "CSS selector for page content (e.g., '#content', '.article', 'main')")
	outPath := flag.String("out", "catalog.yaml", "Where to write the imported catalog")
	flag.Parse()

	if *importMode {
		runImport(*contentServerURL, *baseURL, *rootPath, *selector, *outPath)
		return
	}

	cat, err := catalog.Load(*catalogPath)
	if err != nil {
		log.Fatal(err)
	}
	svc := service.NewService(cat)

	// Create MCP server over the catalog
	s := mcp.NewServer(svc)

	if *httpAddr != "" {
		logger, err := zap.NewProduction()
		if err != nil {
			log.Fatal(err)
		}
		defer logger.Sync()

		// Start the HTTP server with MCP and SSE endpoints
		log.Printf("Starting MCP server on HTTP address: %s", *httpAddr)
		httpServer := mcp.NewMcpHTTPSSEServer(logger, s, svc, "/mcp", nil)
		if err := http.ListenAndServe(*httpAddr, httpServer); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}
	// Start the stdio server
	if *stdioMode {
		log.Println("Starting MCP server in stdio mode...")
	} else {
		log.Println("Starting MCP server in stdio mode (default)...")
	}
	if err := server.ServeStdio(s); err != nil {
		log.Fatal(err)
	}
}

func runImport(contentServerURL, baseURL, rootPath, selector, outPath string) {
	if contentServerURL == "" || baseURL == "" {
		log.Fatal("-content-server and -base-url are required in import mode")
	}
	imp := importer.New(importer.Settings{
		Env:              &requests.Env{},
		ContentSelector:  selector,
		BaseURL:          baseURL,
		ContentServerURL: contentServerURL,
	}, nil)
	cat, err := imp.Import(context.Background(), rootPath)
	if err != nil {
		log.Fatal(err)
	}
	data, err := yaml.Marshal(cat)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %d categories and %d articles to %s", len(cat.Categories), len(cat.Articles), outPath)
}
