package api

import (
	"bytes"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportHandler_ExportarCSV(t *testing.T) {
	svc, mock, cleanup := setupDespesaService(t)
	defer cleanup()

	inserida := time.Date(2026, 1, 15, 12, 30, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT .* FROM `despesas`").
		WillReturnRows(sqlmock.NewRows(colunasDespesa()).
			AddRow(1, "CRÉDITO PARCELADO", "Notebook", 250.0, 10, 6, false, inserida).
			AddRow(2, "BOLETO", "Condomínio", 480.0, 5, nil, true, inserida))

	router := gin.New()
	router.GET("/despesas/exportar/csv", NewExportHandler(svc).ExportarCSV)

	req := httptest.NewRequest("GET", "/despesas/exportar/csv", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "despesas_")
	// BOM no início do arquivo
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\xEF\xBB\xBF")))
	assert.Contains(t, w.Body.String(), "Dia de Vencimento")
	assert.Contains(t, w.Body.String(), "Notebook")
	assert.Contains(t, w.Body.String(), "250.00")
	assert.Contains(t, w.Body.String(), "Sim")
	assert.Contains(t, w.Body.String(), "15/01/2026 12:30")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_ExportarExcel(t *testing.T) {
	svc, mock, cleanup := setupDespesaService(t)
	defer cleanup()

	inserida := time.Date(2026, 1, 15, 12, 30, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT .* FROM `despesas`").
		WillReturnRows(sqlmock.NewRows(colunasDespesa()).
			AddRow(1, "PIX", "Internet", 99.9, 15, nil, false, inserida).
			AddRow(2, "CRÉDITO FIXO", "Academia", 120.0, 20, nil, true, inserida))

	router := gin.New()
	router.GET("/despesas/exportar/excel", NewExportHandler(svc).ExportarExcel)

	req := httptest.NewRequest("GET", "/despesas/exportar/excel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	a1, err := f.GetCellValue("Despesas", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", a1)

	c2, err := f.GetCellValue("Despesas", "C2")
	require.NoError(t, err)
	assert.Equal(t, "Internet", c2)

	// Linha de total depois das duas despesas
	total, err := f.GetCellValue("Despesas", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Total", total)

	require.NoError(t, mock.ExpectationsWereMet())
}
