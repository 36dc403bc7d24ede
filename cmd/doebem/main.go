// Command doebem is the terminal client for the doebem donation platform:
// browse institutions, register items and bundle them into donation requests.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/doebem/doebem-cli/internal/api"
	"github.com/doebem/doebem-cli/internal/config"
	"github.com/doebem/doebem-cli/internal/errs"
	"github.com/doebem/doebem-cli/internal/session"
	"github.com/doebem/doebem-cli/internal/store"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func usage() {
	fmt.Fprintf(os.Stderr, `doebem CLI
Usage:
  doebem [-api URL] [-timeout DUR] [-v] <cmd> [args]

Commands:
  version
  register      -nome N -email E -senha S -endereco ID [-telefone T]
  login         -email E -senha S
  logout
  whoami
  instituicoes  list | get -id ID
  categorias    list | get -id ID
  itens         list | get -id ID | add -titulo T -estado E -categoria ID [...] |
                edit -id ID ... | rm -id ID
  doacoes       list | get -id ID | historico | create -instituicao ID -itens 10,11 |
                status -id ID -status ABERTA|CONCLUIDA|CANCELADA | rm -id ID

Environment: DOEBEM_API_URL, DOEBEM_TIMEOUT, DOEBEM_VERBOSE
`)
	os.Exit(2)
}

// main wires the layers in a fixed order (config, logger, durable store, API
// client, session) before any command runs, then dispatches.
func main() {
	cfg := config.FromEnv()
	apiURL := flag.String("api", cfg.APIBaseURL, "backend base URL")
	timeout := flag.Duration("timeout", cfg.Timeout, "per-request timeout")
	verbose := flag.Bool("v", cfg.Verbose, "verbose logging")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	cfg.APIBaseURL, cfg.Timeout, cfg.Verbose = *apiURL, *timeout, *verbose

	logger := cfg.Logger()
	defer func() { _ = logger.Sync() }()

	durable := store.New()
	client, err := api.New(api.Config{BaseURL: cfg.APIBaseURL, Timeout: cfg.Timeout}, durable, logger)
	if err != nil {
		fail(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	a := &app{
		ctx:     ctx,
		api:     client,
		session: session.New(client, durable, logger),
	}

	switch cmd := flag.Arg(0); cmd {
	case "version":
		fmt.Printf("doebem %s (%s)\n", version, buildDate)
	case "register":
		a.cmdRegister(flag.Args()[1:])
	case "login":
		a.cmdLogin(flag.Args()[1:])
	case "logout":
		a.cmdLogout()
	case "whoami":
		a.cmdWhoami()
	case "instituicoes":
		a.cmdInstituicoes(flag.Args()[1:])
	case "categorias":
		a.cmdCategorias(flag.Args()[1:])
	case "itens":
		a.cmdItens(flag.Args()[1:])
	case "doacoes":
		a.cmdDoacoes(flag.Args()[1:])
	default:
		usage()
	}
}

// app bundles the wired layers for the command implementations.
type app struct {
	ctx     context.Context
	api     *api.Client
	session *session.Store
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// friendlyMessage maps the error taxonomy onto the messages a user sees, so
// "wrong password", "backend down" and "no connectivity" read differently.
func friendlyMessage(err error) string {
	var apiErr *errs.APIError
	switch {
	case errs.IsValidation(err):
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return "invalid input: " + apiErr.Message
		}
		return "invalid input: " + err.Error()
	case errs.IsUnauthorized(err):
		return "not authorized; your session may have expired, run 'doebem login'"
	case errs.IsNetwork(err):
		return "cannot reach the server; check your connection and the -api address"
	case errs.IsServer(err):
		return "the server reported an internal error; try again later"
	default:
		return err.Error()
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, friendlyMessage(err))
	os.Exit(1)
}
