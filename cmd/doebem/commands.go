package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/doebem/doebem-cli/internal/errs"
	"github.com/doebem/doebem-cli/internal/model"
	"github.com/doebem/doebem-cli/internal/validate"
)

// requireUser rehydrates the session from the durable store and returns the
// logged-in user, failing the command when nobody is logged in.
func (a *app) requireUser() *model.Usuario {
	if err := a.session.Rehydrate(a.ctx); err != nil {
		fail(err)
	}
	u := a.session.Current()
	if u == nil {
		fmt.Fprintln(os.Stderr, "not logged in; run 'doebem login -email ... -senha ...'")
		os.Exit(1)
	}
	return u
}

// parseIDList turns "10,11" into item references.
func parseIDList(s string) ([]int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty id list")
	}
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("bad id %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ---- auth ----

func (a *app) cmdRegister(args []string) {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	nome := fs.String("nome", "", "display name")
	email := fs.String("email", "", "email")
	senha := fs.String("senha", "", "password (min 6 chars)")
	telefone := fs.String("telefone", "", "phone (optional)")
	endereco := fs.Int64("endereco", 0, "address id")
	_ = fs.Parse(args)

	in := model.UsuarioCreate{
		Nome:       *nome,
		Email:      *email,
		Senha:      *senha,
		Telefone:   optString(*telefone),
		IDEndereco: *endereco,
	}
	if err := validate.Struct(in); err != nil {
		fail(err)
	}
	u, err := a.api.Usuarios.Create(a.ctx, in)
	if err != nil {
		fail(err)
	}
	printJSON(u)
}

func (a *app) cmdLogin(args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email")
	senha := fs.String("senha", "", "password")
	_ = fs.Parse(args)

	ok, err := a.session.Login(a.ctx, *email, *senha)
	if err != nil {
		fail(err)
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "invalid credentials")
		os.Exit(1)
	}
	fmt.Println("ok")
}

func (a *app) cmdLogout() {
	a.session.Logout()
	fmt.Println("ok")
}

func (a *app) cmdWhoami() {
	printJSON(a.requireUser())
}

// ---- read-mostly resources ----

func (a *app) cmdInstituicoes(args []string) {
	if len(args) < 1 {
		usage()
	}
	switch args[0] {
	case "list":
		out, err := a.api.Instituicoes.List(a.ctx)
		if err != nil {
			fail(err)
		}
		printJSON(out)
	case "get":
		fs := flag.NewFlagSet("instituicoes get", flag.ExitOnError)
		id := fs.Int64("id", 0, "institution id")
		_ = fs.Parse(args[1:])
		out, err := a.api.Instituicoes.Get(a.ctx, *id)
		if err != nil {
			fail(err)
		}
		printJSON(out)
	default:
		usage()
	}
}

func (a *app) cmdCategorias(args []string) {
	if len(args) < 1 {
		usage()
	}
	switch args[0] {
	case "list":
		out, err := a.api.Categorias.List(a.ctx)
		if err != nil {
			fail(err)
		}
		printJSON(out)
	case "get":
		fs := flag.NewFlagSet("categorias get", flag.ExitOnError)
		id := fs.Int64("id", 0, "category id")
		_ = fs.Parse(args[1:])
		out, err := a.api.Categorias.Get(a.ctx, *id)
		if err != nil {
			fail(err)
		}
		printJSON(out)
	default:
		usage()
	}
}

// ---- itens ----

func (a *app) cmdItens(args []string) {
	if len(args) < 1 {
		usage()
	}
	switch args[0] {
	case "list":
		out, err := a.api.Itens.List(a.ctx)
		if err != nil {
			fail(err)
		}
		printJSON(out)
	case "get":
		fs := flag.NewFlagSet("itens get", flag.ExitOnError)
		id := fs.Int64("id", 0, "item id")
		_ = fs.Parse(args[1:])
		out, err := a.api.Itens.Get(a.ctx, *id)
		if err != nil {
			fail(err)
		}
		printJSON(out)
	case "add":
		a.cmdItensAdd(args[1:])
	case "edit":
		a.cmdItensEdit(args[1:])
	case "rm":
		fs := flag.NewFlagSet("itens rm", flag.ExitOnError)
		id := fs.Int64("id", 0, "item id")
		_ = fs.Parse(args[1:])
		a.requireUser()
		if err := a.api.Itens.Delete(a.ctx, *id); err != nil {
			fail(err)
		}
		fmt.Println("ok")
	default:
		usage()
	}
}

func itemFlags(fs *flag.FlagSet) (titulo, estado, foto, descricao *string, categoria *int64) {
	titulo = fs.String("titulo", "", "item title")
	estado = fs.String("estado", "", "conservation state (e.g. NOVO, BOM, USADO)")
	foto = fs.String("foto", "", "photo URL (optional)")
	descricao = fs.String("descricao", "", "description (optional)")
	categoria = fs.Int64("categoria", 0, "category id")
	return
}

func (a *app) cmdItensAdd(args []string) {
	fs := flag.NewFlagSet("itens add", flag.ExitOnError)
	titulo, estado, foto, descricao, categoria := itemFlags(fs)
	_ = fs.Parse(args)

	u := a.requireUser()
	in := model.ItemCreate{
		Titulo:            *titulo,
		EstadoConservacao: *estado,
		FotoURL:           optString(*foto),
		Descricao:         optString(*descricao),
		UsuarioID:         u.ID,
		CategoriaID:       *categoria,
	}
	if err := validate.Struct(in); err != nil {
		fail(err)
	}
	out, err := a.api.Itens.Create(a.ctx, in)
	if err != nil {
		fail(err)
	}
	printJSON(out)
}

func (a *app) cmdItensEdit(args []string) {
	fs := flag.NewFlagSet("itens edit", flag.ExitOnError)
	id := fs.Int64("id", 0, "item id")
	titulo, estado, foto, descricao, categoria := itemFlags(fs)
	_ = fs.Parse(args)

	u := a.requireUser()
	in := model.ItemCreate{
		Titulo:            *titulo,
		EstadoConservacao: *estado,
		FotoURL:           optString(*foto),
		Descricao:         optString(*descricao),
		UsuarioID:         u.ID,
		CategoriaID:       *categoria,
	}
	if err := validate.Struct(in); err != nil {
		fail(err)
	}
	out, err := a.api.Itens.Update(a.ctx, *id, in)
	if err != nil {
		fail(err)
	}
	printJSON(out)
}

// ---- doacoes ----

func (a *app) cmdDoacoes(args []string) {
	if len(args) < 1 {
		usage()
	}
	switch args[0] {
	case "list":
		a.requireUser()
		out, err := a.api.Doacoes.List(a.ctx)
		if err != nil {
			fail(err)
		}
		printJSON(out)
	case "get":
		fs := flag.NewFlagSet("doacoes get", flag.ExitOnError)
		id := fs.Int64("id", 0, "donation id")
		_ = fs.Parse(args[1:])
		a.requireUser()
		out, err := a.api.Doacoes.Get(a.ctx, *id)
		if err != nil {
			fail(err)
		}
		printJSON(out)
	case "historico":
		u := a.requireUser()
		out, err := a.api.Doacoes.ListByUsuario(a.ctx, u.ID)
		if err != nil {
			fail(err)
		}
		printJSON(out)
	case "create":
		a.cmdDoacoesCreate(args[1:])
	case "status":
		a.cmdDoacoesStatus(args[1:])
	case "rm":
		fs := flag.NewFlagSet("doacoes rm", flag.ExitOnError)
		id := fs.Int64("id", 0, "donation id")
		_ = fs.Parse(args[1:])
		a.requireUser()
		if err := a.api.Doacoes.Delete(a.ctx, *id); err != nil {
			fail(err)
		}
		fmt.Println("ok")
	default:
		usage()
	}
}

func (a *app) cmdDoacoesCreate(args []string) {
	fs := flag.NewFlagSet("doacoes create", flag.ExitOnError)
	instituicao := fs.Int64("instituicao", 0, "institution id")
	itens := fs.String("itens", "", "comma-separated item ids, e.g. 10,11")
	_ = fs.Parse(args)

	u := a.requireUser()
	if u.ID <= 0 {
		fail(errs.Validation("usuarioId", "session has no user id; login again"))
	}
	ids, err := parseIDList(*itens)
	if err != nil {
		fail(errs.Validation("idItens", err.Error()))
	}
	in := model.DoacaoCreate{InstituicaoID: *instituicao, ItemIDs: ids}
	if err := validate.Struct(in); err != nil {
		fail(err)
	}
	out, err := a.api.Doacoes.Create(a.ctx, u.ID, in)
	if err != nil {
		fail(err)
	}
	printJSON(out)
}

func (a *app) cmdDoacoesStatus(args []string) {
	fs := flag.NewFlagSet("doacoes status", flag.ExitOnError)
	id := fs.Int64("id", 0, "donation id")
	status := fs.String("status", "", "new status: ABERTA, CONCLUIDA or CANCELADA")
	_ = fs.Parse(args)

	a.requireUser()
	st := model.ParseStatus(strings.ToUpper(strings.TrimSpace(*status)))
	if !st.Known() {
		fail(errs.Validation("status", fmt.Sprintf("unknown status %q", *status)))
	}
	out, err := a.api.Doacoes.UpdateStatus(a.ctx, *id, st)
	if err != nil {
		fail(err)
	}
	printJSON(out)
}
