package models

import (
	"context"
	"errors"
)

// Erros de persistência traduzidos na borda do armazenamento
var (
	// ErrDespesaNaoEncontrada o id informado não existe na base
	ErrDespesaNaoEncontrada = errors.New("despesa não encontrada")
	// ErrConflitoIntegridade o banco rejeitou a escrita por violação de integridade
	ErrConflitoIntegridade = errors.New("violação de integridade")
)

// DespesaStore contrato de persistência das despesas. A implementação é
// injetada no serviço na construção, nunca consultada por variável global.
type DespesaStore interface {
	// Criar insere a despesa e preenche ID e DataInsercao
	Criar(ctx context.Context, d *Despesa) error
	// Listar retorna todas as despesas, na ordem natural do banco
	Listar(ctx context.Context) ([]Despesa, error)
	// Buscar retorna a despesa pelo id ou ErrDespesaNaoEncontrada
	Buscar(ctx context.Context, id uint) (*Despesa, error)
	// Atualizar carrega a despesa, aplica a função dentro de uma transação
	// e grava o resultado; retorna o registro já atualizado
	Atualizar(ctx context.Context, id uint, aplicar func(*Despesa) error) (*Despesa, error)
	// Remover exclui definitivamente a despesa pelo id
	Remover(ctx context.Context, id uint) error
}
