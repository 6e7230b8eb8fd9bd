package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sampconrad/sistema-despesas-api/models"
	"github.com/sampconrad/sistema-despesas-api/service"

	"github.com/gin-gonic/gin"
)

// Mensagens fixas devolvidas pela API
const (
	msgNaoEncontrada       = "Despesa não encontrada na base"
	msgConflito            = "Erro de integridade ao adicionar despesa"
	msgErroInterno         = "Erro interno do servidor"
	msgFalhaAoSalvar       = "Não foi possível salvar nova despesa"
	msgFalhaAoAtualizar    = "Não foi possível atualizar a despesa"
	msgParametrosInvalidos = "Parâmetros inválidos"
	msgIDObrigatorio       = "id é obrigatório"
)

var msgTipoInvalido = "Tipo deve ser um dos seguintes: " + juntaTipos()

func juntaTipos() string {
	rotulos := make([]string, 0, len(models.TiposDespesa()))
	for _, t := range models.TiposDespesa() {
		rotulos = append(rotulos, string(t))
	}
	return strings.Join(rotulos, ", ")
}

// DespesaHandler endpoints de despesa
type DespesaHandler struct {
	service *service.DespesaService
}

// NewDespesaHandler cria o handler com o serviço injetado
func NewDespesaHandler(s *service.DespesaService) *DespesaHandler {
	return &DespesaHandler{service: s}
}

// DespesaForm formulário de criação de despesa
type DespesaForm struct {
	Tipo          string   `form:"tipo" example:"CRÉDITO PARCELADO"`
	Titulo        string   `form:"titulo" example:"Notebook"`
	Valor         *float64 `form:"valor" example:"250.00"`
	DiaVencimento *int     `form:"dia_vencimento" example:"10"`
	Parcelas      string   `form:"parcelas" example:"6"`
	Paga          bool     `form:"paga" example:"false"`
}

// DespesaAtualizaForm formulário de atualização parcial; campos ausentes
// não são alterados
type DespesaAtualizaForm struct {
	ID            *uint    `form:"id" example:"1"`
	Tipo          *string  `form:"tipo" example:"PIX"`
	Titulo        *string  `form:"titulo" example:"Internet"`
	Valor         *float64 `form:"valor" example:"99.90"`
	DiaVencimento *int     `form:"dia_vencimento" example:"15"`
	Parcelas      string   `form:"parcelas" example:"null"`
	Paga          *bool    `form:"paga" example:"true"`
}

// DespesaBuscaQuery identificação da despesa na query string
type DespesaBuscaQuery struct {
	ID *uint `form:"id" example:"1"`
}

// DespesaResponse projeção de despesa devolvida pela API
type DespesaResponse struct {
	ID            uint    `json:"id" example:"1"`
	Tipo          string  `json:"tipo" example:"CRÉDITO PARCELADO"`
	Titulo        string  `json:"titulo" example:"Notebook"`
	Valor         float64 `json:"valor" example:"250.00"`
	Parcelas      *int    `json:"parcelas" example:"6"`
	DiaVencimento int     `json:"dia_vencimento" example:"10"`
	Paga          bool    `json:"paga" example:"false"`
	DataInsercao  string  `json:"data_insercao" example:"15/01/2026 12:30"`
}

// ListaDespesasResponse coleção de despesas cadastradas
type ListaDespesasResponse struct {
	Despesas []DespesaResponse `json:"despesas"`
}

func montaDespesaResponse(d models.Despesa) DespesaResponse {
	return DespesaResponse{
		ID:            d.ID,
		Tipo:          string(d.Tipo),
		Titulo:        d.Titulo,
		Valor:         d.Valor,
		Parcelas:      d.Parcelas,
		DiaVencimento: d.DiaVencimento,
		Paga:          d.Paga,
		DataInsercao:  d.DataInsercao.Format("02/01/2006 15:04"),
	}
}

// normalizaParcelas interpreta o campo parcelas do formulário;
// "" e "null" contam como não informado
func normalizaParcelas(valor string) (*int, error) {
	valor = strings.TrimSpace(valor)
	if valor == "" || valor == "null" {
		return nil, nil
	}
	n, err := strconv.Atoi(valor)
	if err != nil {
		return nil, errors.New("Parcelas deve ser um número inteiro")
	}
	if n <= 0 {
		return nil, errors.New("Parcelas deve ser um número positivo")
	}
	return &n, nil
}

// validaDespesaForm aplica as regras de campo e monta o comando de criação
func validaDespesaForm(f DespesaForm) (service.CriarDespesaCmd, error) {
	var cmd service.CriarDespesaCmd

	tipo, err := models.ParseTipoDespesa(f.Tipo)
	if err != nil {
		return cmd, errors.New(msgTipoInvalido)
	}
	if f.Titulo == "" {
		return cmd, errors.New("Título é obrigatório")
	}
	if utf8.RuneCountInString(f.Titulo) > 100 {
		return cmd, errors.New("Título deve ter no máximo 100 caracteres")
	}
	if f.Valor == nil {
		return cmd, errors.New("Valor é obrigatório")
	}
	if *f.Valor <= 0 {
		return cmd, errors.New("Valor deve ser maior que zero")
	}
	if f.DiaVencimento == nil {
		return cmd, errors.New("Dia de vencimento é obrigatório")
	}
	if *f.DiaVencimento < 1 || *f.DiaVencimento > 31 {
		return cmd, errors.New("Dia de vencimento deve ser entre 1 e 31")
	}
	parcelas, err := normalizaParcelas(f.Parcelas)
	if err != nil {
		return cmd, err
	}

	cmd = service.CriarDespesaCmd{
		Tipo:          tipo,
		Titulo:        f.Titulo,
		Valor:         *f.Valor,
		DiaVencimento: *f.DiaVencimento,
		Parcelas:      parcelas,
		Paga:          f.Paga,
	}
	return cmd, nil
}

// validaAtualizaForm aplica as mesmas regras de campo, só nos campos enviados
func validaAtualizaForm(f DespesaAtualizaForm) (service.AtualizarDespesaCmd, error) {
	var cmd service.AtualizarDespesaCmd

	if f.ID == nil {
		return cmd, errors.New(msgIDObrigatorio)
	}
	cmd.ID = *f.ID

	if f.Tipo != nil {
		tipo, err := models.ParseTipoDespesa(*f.Tipo)
		if err != nil {
			return cmd, errors.New(msgTipoInvalido)
		}
		cmd.Tipo = &tipo
	}
	if f.Titulo != nil {
		if *f.Titulo == "" {
			return cmd, errors.New("Título é obrigatório")
		}
		if utf8.RuneCountInString(*f.Titulo) > 100 {
			return cmd, errors.New("Título deve ter no máximo 100 caracteres")
		}
		cmd.Titulo = f.Titulo
	}
	if f.Valor != nil {
		if *f.Valor <= 0 {
			return cmd, errors.New("Valor deve ser maior que zero")
		}
		cmd.Valor = f.Valor
	}
	if f.DiaVencimento != nil {
		if *f.DiaVencimento < 1 || *f.DiaVencimento > 31 {
			return cmd, errors.New("Dia de vencimento deve ser entre 1 e 31")
		}
		cmd.DiaVencimento = f.DiaVencimento
	}
	parcelas, err := normalizaParcelas(f.Parcelas)
	if err != nil {
		return cmd, err
	}
	cmd.Parcelas = parcelas
	cmd.Paga = f.Paga

	return cmd, nil
}

// Criar adiciona uma nova despesa
// @Summary Adiciona uma nova despesa
// @Description Registra uma nova despesa mensal na base e devolve a representação criada
// @Tags despesa
// @Accept x-www-form-urlencoded
// @Produce json
// @Param tipo formData string true "Tipo da despesa" Enums(CRÉDITO FIXO,CRÉDITO PARCELADO,PIX,BOLETO)
// @Param titulo formData string true "Título da despesa, até 100 caracteres"
// @Param valor formData number true "Valor da despesa, maior que zero"
// @Param dia_vencimento formData int true "Dia de vencimento, entre 1 e 31"
// @Param parcelas formData string false "Parcelas restantes, apenas para CRÉDITO PARCELADO"
// @Param paga formData bool false "Despesa já paga" default(false)
// @Success 200 {object} DespesaResponse "Despesa criada"
// @Failure 400 {object} ErroResponse "Dados inválidos"
// @Failure 409 {object} ErroResponse "Violação de integridade"
// @Router /despesa [post]
func (h *DespesaHandler) Criar(c *gin.Context) {
	var form DespesaForm
	if err := c.ShouldBind(&form); err != nil {
		BadRequest(c, SafeErrorMessage(err, msgParametrosInvalidos))
		return
	}

	cmd, err := validaDespesaForm(form)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	d, err := h.service.Criar(c.Request.Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrTipoDespesaInvalido):
			BadRequest(c, msgTipoInvalido)
		case errors.Is(err, models.ErrConflitoIntegridade):
			Conflict(c, msgConflito)
		default:
			log.Printf("Erro ao salvar despesa: %v", err)
			BadRequest(c, SafeErrorMessage(err, msgFalhaAoSalvar))
		}
		return
	}

	c.JSON(http.StatusOK, montaDespesaResponse(*d))
}

// Listar lista todas as despesas
// @Summary Lista as despesas cadastradas
// @Description Devolve todas as despesas registradas na base
// @Tags despesa
// @Produce json
// @Success 200 {object} ListaDespesasResponse "Listagem de despesas"
// @Failure 500 {object} ErroResponse "Falha ao consultar a base"
// @Router /despesas [get]
func (h *DespesaHandler) Listar(c *gin.Context) {
	despesas, err := h.service.Listar(c.Request.Context())
	if err != nil {
		log.Printf("Erro ao listar despesas: %v", err)
		InternalError(c, msgErroInterno)
		return
	}

	resposta := ListaDespesasResponse{Despesas: make([]DespesaResponse, 0, len(despesas))}
	for _, d := range despesas {
		resposta.Despesas = append(resposta.Despesas, montaDespesaResponse(d))
	}
	c.JSON(http.StatusOK, resposta)
}

// Buscar busca uma despesa pelo id
// @Summary Busca uma despesa
// @Description Devolve a despesa correspondente ao id informado
// @Tags despesa
// @Produce json
// @Param id query int true "Identificador da despesa"
// @Success 200 {object} DespesaResponse "Despesa encontrada"
// @Failure 400 {object} ErroResponse "Parâmetros inválidos"
// @Failure 404 {object} ErroResponse "Despesa não encontrada"
// @Failure 500 {object} ErroResponse "Falha ao consultar a base"
// @Router /despesa [get]
func (h *DespesaHandler) Buscar(c *gin.Context) {
	var query DespesaBuscaQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		BadRequest(c, SafeErrorMessage(err, msgParametrosInvalidos))
		return
	}
	if query.ID == nil {
		BadRequest(c, msgIDObrigatorio)
		return
	}

	d, err := h.service.Buscar(c.Request.Context(), *query.ID)
	if err != nil {
		if errors.Is(err, models.ErrDespesaNaoEncontrada) {
			NotFound(c, msgNaoEncontrada)
			return
		}
		log.Printf("Erro ao buscar despesa %d: %v", *query.ID, err)
		InternalError(c, msgErroInterno)
		return
	}
	c.JSON(http.StatusOK, montaDespesaResponse(*d))
}

// Atualizar altera uma despesa existente
// @Summary Atualiza uma despesa
// @Description Altera os campos enviados da despesa identificada pelo id; campos ausentes permanecem como estão. Marcar como paga uma despesa de crédito parcelado com parcelas restantes consome uma parcela.
// @Tags despesa
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id formData int true "Identificador da despesa"
// @Param tipo formData string false "Novo tipo da despesa" Enums(CRÉDITO FIXO,CRÉDITO PARCELADO,PIX,BOLETO)
// @Param titulo formData string false "Novo título, até 100 caracteres"
// @Param valor formData number false "Novo valor, maior que zero"
// @Param dia_vencimento formData int false "Novo dia de vencimento, entre 1 e 31"
// @Param parcelas formData string false "Novas parcelas restantes, apenas para CRÉDITO PARCELADO"
// @Param paga formData bool false "Situação de pagamento"
// @Success 200 {object} DespesaResponse "Despesa atualizada"
// @Failure 400 {object} ErroResponse "Dados inválidos"
// @Failure 404 {object} ErroResponse "Despesa não encontrada"
// @Router /despesa [put]
func (h *DespesaHandler) Atualizar(c *gin.Context) {
	var form DespesaAtualizaForm
	if err := c.ShouldBind(&form); err != nil {
		BadRequest(c, SafeErrorMessage(err, msgParametrosInvalidos))
		return
	}

	cmd, err := validaAtualizaForm(form)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	d, err := h.service.Atualizar(c.Request.Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrDespesaNaoEncontrada):
			NotFound(c, msgNaoEncontrada)
		case errors.Is(err, models.ErrTipoDespesaInvalido):
			BadRequest(c, msgTipoInvalido)
		default:
			log.Printf("Erro ao atualizar despesa %d: %v", cmd.ID, err)
			BadRequest(c, SafeErrorMessage(err, msgFalhaAoAtualizar))
		}
		return
	}
	c.JSON(http.StatusOK, montaDespesaResponse(*d))
}

// Remover exclui uma despesa pelo id
// @Summary Remove uma despesa
// @Description Exclui definitivamente a despesa correspondente ao id informado
// @Tags despesa
// @Produce json
// @Param id query int true "Identificador da despesa"
// @Success 200 {object} RemocaoResponse "Despesa removida"
// @Failure 400 {object} ErroResponse "Parâmetros inválidos"
// @Failure 404 {object} ErroResponse "Despesa não encontrada"
// @Failure 500 {object} ErroResponse "Falha ao consultar a base"
// @Router /despesa [delete]
func (h *DespesaHandler) Remover(c *gin.Context) {
	var query DespesaBuscaQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		BadRequest(c, SafeErrorMessage(err, msgParametrosInvalidos))
		return
	}
	if query.ID == nil {
		BadRequest(c, msgIDObrigatorio)
		return
	}

	if err := h.service.Remover(c.Request.Context(), *query.ID); err != nil {
		if errors.Is(err, models.ErrDespesaNaoEncontrada) {
			NotFound(c, msgNaoEncontrada)
			return
		}
		log.Printf("Erro ao remover despesa %d: %v", *query.ID, err)
		InternalError(c, msgErroInterno)
		return
	}
	c.JSON(http.StatusOK, RemocaoResponse{Message: "Despesa removida", ID: *query.ID})
}
