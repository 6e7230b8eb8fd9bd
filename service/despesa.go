package service

import (
	"context"
	"fmt"

	"github.com/sampconrad/sistema-despesas-api/models"
)

// CriarDespesaCmd dados já validados para registrar uma despesa
type CriarDespesaCmd struct {
	Tipo          models.TipoDespesa
	Titulo        string
	Valor         float64
	DiaVencimento int
	Parcelas      *int
	Paga          bool
}

// AtualizarDespesaCmd alteração parcial de uma despesa; campos nil não
// foram enviados no formulário e permanecem como estão
type AtualizarDespesaCmd struct {
	ID            uint
	Tipo          *models.TipoDespesa
	Titulo        *string
	Valor         *float64
	DiaVencimento *int
	Parcelas      *int
	Paga          *bool
}

// DespesaService regras de negócio das despesas sobre o store injetado
type DespesaService struct {
	store models.DespesaStore
}

// NewDespesaService cria o serviço com o store informado
func NewDespesaService(store models.DespesaStore) *DespesaService {
	return &DespesaService{store: store}
}

// Criar registra uma nova despesa e devolve o registro persistido
func (s *DespesaService) Criar(ctx context.Context, cmd CriarDespesaCmd) (*models.Despesa, error) {
	// O tipo é revalidado na borda do domínio, além da validação do formulário
	if !cmd.Tipo.Valido() {
		return nil, fmt.Errorf("%w: %q", models.ErrTipoDespesaInvalido, cmd.Tipo)
	}

	d := &models.Despesa{
		Tipo:          cmd.Tipo,
		Titulo:        cmd.Titulo,
		Valor:         cmd.Valor,
		DiaVencimento: cmd.DiaVencimento,
		Paga:          cmd.Paga,
	}
	// Parcelas só existem em compras parceladas
	if cmd.Tipo == models.TipoCreditoParcelado {
		d.Parcelas = cmd.Parcelas
	}

	if err := s.store.Criar(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Listar retorna todas as despesas registradas
func (s *DespesaService) Listar(ctx context.Context) ([]models.Despesa, error) {
	return s.store.Listar(ctx)
}

// Buscar retorna a despesa pelo id
func (s *DespesaService) Buscar(ctx context.Context, id uint) (*models.Despesa, error) {
	return s.store.Buscar(ctx, id)
}

// Atualizar aplica a alteração parcial sobre o registro atual.
// Regras de parcela:
//   - mudar o tipo para algo que não seja crédito parcelado zera as parcelas;
//   - parcelas enviadas só valem quando a despesa é (ou passa a ser) parcelada;
//   - marcar como paga uma despesa parcelada com parcelas restantes consome
//     uma parcela; desmarcar nunca devolve.
func (s *DespesaService) Atualizar(ctx context.Context, cmd AtualizarDespesaCmd) (*models.Despesa, error) {
	if cmd.Tipo != nil && !cmd.Tipo.Valido() {
		return nil, fmt.Errorf("%w: %q", models.ErrTipoDespesaInvalido, *cmd.Tipo)
	}

	return s.store.Atualizar(ctx, cmd.ID, func(d *models.Despesa) error {
		if cmd.Tipo != nil {
			d.Tipo = *cmd.Tipo
			if *cmd.Tipo != models.TipoCreditoParcelado {
				d.Parcelas = nil
			}
		}
		if cmd.Titulo != nil {
			d.Titulo = *cmd.Titulo
		}
		if cmd.Valor != nil {
			d.Valor = *cmd.Valor
		}
		if cmd.DiaVencimento != nil {
			d.DiaVencimento = *cmd.DiaVencimento
		}
		if cmd.Parcelas != nil {
			parcelada := (cmd.Tipo != nil && *cmd.Tipo == models.TipoCreditoParcelado) ||
				(cmd.Tipo == nil && d.Tipo == models.TipoCreditoParcelado)
			if parcelada {
				d.Parcelas = cmd.Parcelas
			}
		}
		if cmd.Paga != nil {
			if *cmd.Paga && !d.Paga && d.Tipo == models.TipoCreditoParcelado &&
				d.Parcelas != nil && *d.Parcelas > 0 {
				resto := *d.Parcelas - 1
				d.Parcelas = &resto
			}
			// Paga é atualizada mesmo quando não há parcela para consumir
			d.Paga = *cmd.Paga
		}
		return nil
	})
}

// Remover exclui a despesa definitivamente
func (s *DespesaService) Remover(ctx context.Context, id uint) error {
	return s.store.Remover(ctx, id)
}
