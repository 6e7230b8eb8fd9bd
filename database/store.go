package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/sampconrad/sistema-despesas-api/models"
)

// DespesaStore implementação gorm de models.DespesaStore
type DespesaStore struct {
	db *gorm.DB
}

var _ models.DespesaStore = (*DespesaStore)(nil)

// NewDespesaStore cria o store sobre a conexão informada
func NewDespesaStore(db *gorm.DB) *DespesaStore {
	return &DespesaStore{db: db}
}

// Criar insere a despesa; ID e DataInsercao são preenchidos na inserção
func (s *DespesaStore) Criar(ctx context.Context, d *models.Despesa) error {
	if err := s.db.WithContext(ctx).Create(d).Error; err != nil {
		return traduzErro(err)
	}
	return nil
}

// Listar retorna todas as despesas, na ordem natural do banco
func (s *DespesaStore) Listar(ctx context.Context) ([]models.Despesa, error) {
	var despesas []models.Despesa
	if err := s.db.WithContext(ctx).Find(&despesas).Error; err != nil {
		return nil, traduzErro(err)
	}
	return despesas, nil
}

// Buscar retorna a despesa pelo id
func (s *DespesaStore) Buscar(ctx context.Context, id uint) (*models.Despesa, error) {
	var d models.Despesa
	if err := s.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, traduzErro(err)
	}
	return &d, nil
}

// Atualizar carrega a despesa, aplica a função e grava o resultado numa
// única transação; qualquer falha desfaz a transação inteira
func (s *DespesaStore) Atualizar(ctx context.Context, id uint, aplicar func(*models.Despesa) error) (*models.Despesa, error) {
	var d models.Despesa
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&d, id).Error; err != nil {
			return err
		}
		if err := aplicar(&d); err != nil {
			return err
		}
		// Save grava todas as colunas, inclusive parcelas quando volta a NULL
		return tx.Save(&d).Error
	})
	if err != nil {
		return nil, traduzErro(err)
	}
	return &d, nil
}

// Remover exclui definitivamente a despesa pelo id
func (s *DespesaStore) Remover(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Despesa{}, id)
	if res.Error != nil {
		return traduzErro(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrDespesaNaoEncontrada
	}
	return nil
}
