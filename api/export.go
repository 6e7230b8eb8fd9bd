package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/sampconrad/sistema-despesas-api/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler exportação das despesas em arquivo
type ExportHandler struct {
	service *service.DespesaService
}

// NewExportHandler cria o handler de exportação com o serviço injetado
func NewExportHandler(s *service.DespesaService) *ExportHandler {
	return &ExportHandler{service: s}
}

var cabecalhoExportacao = []string{"ID", "Tipo", "Título", "Valor", "Dia de Vencimento", "Parcelas", "Paga", "Data de Inserção"}

func formataParcelas(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func formataPaga(paga bool) string {
	if paga {
		return "Sim"
	}
	return "Não"
}

// ExportarCSV exporta as despesas em CSV
// @Summary Exporta as despesas em CSV
// @Description Gera um arquivo CSV com todas as despesas cadastradas
// @Tags exportação
// @Produce text/csv
// @Success 200 {file} file "Arquivo CSV"
// @Failure 500 {object} ErroResponse "Falha ao consultar a base"
// @Router /despesas/exportar/csv [get]
func (h *ExportHandler) ExportarCSV(c *gin.Context) {
	despesas, err := h.service.Listar(c.Request.Context())
	if err != nil {
		log.Printf("Erro ao listar despesas para exportação: %v", err)
		InternalError(c, msgErroInterno)
		return
	}

	buf := new(bytes.Buffer)
	// BOM para o Excel reconhecer a acentuação
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	if err := writer.Write(cabecalhoExportacao); err != nil {
		InternalError(c, "Falha ao gerar o CSV")
		return
	}

	for _, d := range despesas {
		row := []string{
			fmt.Sprintf("%d", d.ID),
			string(d.Tipo),
			d.Titulo,
			fmt.Sprintf("%.2f", d.Valor),
			fmt.Sprintf("%d", d.DiaVencimento),
			formataParcelas(d.Parcelas),
			formataPaga(d.Paga),
			d.DataInsercao.Format("02/01/2006 15:04"),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "Falha ao gerar o CSV")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "Falha ao gerar o CSV")
		return
	}

	filename := fmt.Sprintf("despesas_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportarExcel exporta as despesas em planilha Excel
// @Summary Exporta as despesas em Excel
// @Description Gera uma planilha xlsx com todas as despesas cadastradas e uma linha de total
// @Tags exportação
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Planilha xlsx"
// @Failure 500 {object} ErroResponse "Falha ao consultar a base"
// @Router /despesas/exportar/excel [get]
func (h *ExportHandler) ExportarExcel(c *gin.Context) {
	despesas, err := h.service.Listar(c.Request.Context())
	if err != nil {
		log.Printf("Erro ao listar despesas para exportação: %v", err)
		InternalError(c, msgErroInterno)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Despesas"
	f.SetSheetName("Sheet1", sheetName)

	// Estilo do cabeçalho
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// Estilo das linhas de dados
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// Largura das colunas
	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 22)
	f.SetColWidth(sheetName, "C", "C", 30)
	f.SetColWidth(sheetName, "D", "D", 14)
	f.SetColWidth(sheetName, "E", "E", 18)
	f.SetColWidth(sheetName, "F", "F", 12)
	f.SetColWidth(sheetName, "G", "G", 10)
	f.SetColWidth(sheetName, "H", "H", 20)

	// Cabeçalho
	for i, header := range cabecalhoExportacao {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	// Dados
	var valorTotal float64
	for i, d := range despesas {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), d.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), string(d.Tipo))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), d.Titulo)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), d.Valor)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), d.DiaVencimento)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), formataParcelas(d.Parcelas))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), formataPaga(d.Paga))
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), d.DataInsercao.Format("02/01/2006 15:04"))

		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("H%d", row), dataStyle)
		valorTotal += d.Valor
	}

	// Linha de total
	summaryRow := len(despesas) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "Total")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("C%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow), valorTotal)
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", summaryRow), fmt.Sprintf("%d despesas", len(despesas)))
	f.MergeCell(sheetName, fmt.Sprintf("E%d", summaryRow), fmt.Sprintf("H%d", summaryRow))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("H%d", summaryRow), summaryStyle)

	filename := fmt.Sprintf("despesas_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "Falha ao gerar a planilha")
		return
	}
}
