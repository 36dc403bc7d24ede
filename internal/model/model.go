// Package model defines the wire entities mirrored from the donation
// backend. JSON tags follow the backend contract verbatim (Portuguese field
// names); no derived state is kept client-side.
package model

// StatusDoacao is the server-side donation lifecycle state. The zero value
// covers responses that omit or invent a status.
type StatusDoacao string

const (
	StatusDesconhecida StatusDoacao = ""
	StatusAberta       StatusDoacao = "ABERTA"
	StatusConcluida    StatusDoacao = "CONCLUIDA"
	StatusCancelada    StatusDoacao = "CANCELADA"
)

// ParseStatus maps a raw status string onto the known set, falling back to
// StatusDesconhecida for anything the backend may add later.
func ParseStatus(s string) StatusDoacao {
	switch StatusDoacao(s) {
	case StatusAberta, StatusConcluida, StatusCancelada:
		return StatusDoacao(s)
	default:
		return StatusDesconhecida
	}
}

// Known reports whether the status is one of the documented lifecycle states.
func (s StatusDoacao) Known() bool {
	return s == StatusAberta || s == StatusConcluida || s == StatusCancelada
}

// Endereco is the address record attached to users and institutions.
type Endereco struct {
	ID          int64   `json:"idEndereco"`
	Logradouro  string  `json:"logradouro"`
	Numero      string  `json:"numero"`
	CEP         string  `json:"cep"`
	Complemento *string `json:"complemento,omitempty"`
	BairroNome  string  `json:"bairroNome"`
	CidadeNome  string  `json:"cidadeNome"`
	EstadoNome  string  `json:"estadoNome"`
	PaisNome    string  `json:"paisNome"`
}

// Usuario is a registered donor. Dates stay strings: the backend emits
// LocalDateTime without a zone, which time.Time refuses to parse.
type Usuario struct {
	ID         int64     `json:"idUsuario"`
	Nome       string    `json:"nome"`
	Email      string    `json:"email"`
	Telefone   *string   `json:"telefone,omitempty"`
	DtCadastro string    `json:"dtCadastro,omitempty"`
	Endereco   *Endereco `json:"endereco,omitempty"`
}

// UsuarioCreate is the registration/update payload.
type UsuarioCreate struct {
	Nome       string  `json:"nome" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Senha      string  `json:"senha" validate:"required,min=6"`
	Telefone   *string `json:"telefone,omitempty"`
	IDEndereco int64   `json:"idEndereco" validate:"required,gt=0"`
}

// Instituicao is a receiving NGO. Read-only from the app's point of view,
// but the admin endpoints exist and the accessors cover them.
type Instituicao struct {
	ID                int64     `json:"idInstituicao"`
	Nome              string    `json:"nome"`
	CNPJ              string    `json:"cnpj"`
	CategoriasAceitas string    `json:"categoriasAceitas,omitempty"`
	Email             string    `json:"email,omitempty"`
	Telefone          *string   `json:"telefone,omitempty"`
	DtCadastro        string    `json:"dtCadastro,omitempty"`
	Endereco          *Endereco `json:"endereco,omitempty"`
}

// InstituicaoCreate is the create/update payload for an institution.
type InstituicaoCreate struct {
	Nome              string  `json:"nome" validate:"required"`
	CNPJ              string  `json:"cnpj" validate:"required"`
	CategoriasAceitas string  `json:"categoriasAceitas,omitempty"`
	Email             string  `json:"email,omitempty" validate:"omitempty,email"`
	Telefone          *string `json:"telefone,omitempty"`
	IDEndereco        int64   `json:"idEndereco" validate:"required,gt=0"`
}

// Categoria tags items (roupas, alimentos, moveis, ...).
type Categoria struct {
	ID   int64  `json:"idCategoria"`
	Nome string `json:"nome"`
}

// CategoriaCreate is the create/update payload for a category.
type CategoriaCreate struct {
	Nome string `json:"nome" validate:"required"`
}

// Item is a physical good a user registered for donation. Owner and category
// come back denormalized (id + display name).
type Item struct {
	ID                int64   `json:"idItem"`
	Titulo            string  `json:"titulo"`
	EstadoConservacao string  `json:"estadoConservacao"`
	FotoURL           *string `json:"fotoUrl,omitempty"`
	Descricao         *string `json:"descricao,omitempty"`
	DtRegistro        string  `json:"dtRegistro,omitempty"`
	UsuarioID         int64   `json:"usuarioId"`
	UsuarioNome       string  `json:"usuarioNome,omitempty"`
	CategoriaID       int64   `json:"categoriaId"`
	CategoriaNome     string  `json:"categoriaNome,omitempty"`
}

// ItemCreate is the create/update payload for an item.
type ItemCreate struct {
	Titulo            string  `json:"titulo" validate:"required"`
	EstadoConservacao string  `json:"estadoConservacao" validate:"required"`
	FotoURL           *string `json:"fotoUrl,omitempty" validate:"omitempty,url"`
	Descricao         *string `json:"descricao,omitempty"`
	UsuarioID         int64   `json:"usuarioId" validate:"required,gt=0"`
	CategoriaID       int64   `json:"categoriaId" validate:"required,gt=0"`
}

// Doacao bundles one or more items offered to an institution. Status
// transitions happen server-side only; the client just re-fetches.
type Doacao struct {
	ID            int64        `json:"idDoacao"`
	Status        StatusDoacao `json:"status,omitempty"`
	UsuarioID     int64        `json:"idUsuario"`
	InstituicaoID int64        `json:"idInstituicao"`
	DtSolicitacao string       `json:"dtSolicitacao,omitempty"`
	DtConfirmacao *string      `json:"dtConfirmacao,omitempty"`
	Itens         []Item       `json:"itens,omitempty"`
	Impacto       *string      `json:"impacto,omitempty"` // server-computed descriptor
}

// DoacaoCreate is the donation request body. The acting user travels as a
// query parameter, not here; the backend body schema has no user field.
type DoacaoCreate struct {
	InstituicaoID int64   `json:"idInstituicao" validate:"required,gt=0"`
	ItemIDs       []int64 `json:"idItens" validate:"required,min=1,dive,gt=0"`
}

// Credenciais is the login request body.
type Credenciais struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}
