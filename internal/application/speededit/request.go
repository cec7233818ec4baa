package speededit

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/speed-edit-api/internal/application/dto"
	"github.com/jhoicas/speed-edit-api/internal/domain/entity"
	"github.com/jhoicas/speed-edit-api/internal/domain/stock"
)

// InstructionsFromRequest valida el lote recibido por HTTP y lo convierte en instrucciones tipadas.
// Las entradas inválidas (id no positivo, acción desconocida, cantidad no entera o fuera de rango) se descartan,
// igual que un producto inexistente: no aparecen en el resultado.
func InstructionsFromRequest(in dto.BatchStockUpdateRequest) []EditInstruction {
	out := make([]EditInstruction, 0, len(in.Products))
	for _, p := range in.Products {
		instr, ok := instructionFromRequest(p)
		if !ok {
			continue
		}
		out = append(out, instr)
	}
	return out
}

func instructionFromRequest(p dto.EditInstructionRequest) (EditInstruction, bool) {
	id, err := strconv.ParseInt(p.ProductID.String(), 10, 64)
	if err != nil || id <= 0 {
		return EditInstruction{}, false
	}
	action, ok := entity.ParseStockAction(strings.TrimSpace(p.StockAction))
	if !ok {
		return EditInstruction{}, false
	}
	instr := EditInstruction{ProductID: id, Action: action}

	if action == entity.StockActionLocation {
		instr.Location = NormalizeLocation(p.EditValue.String())
		return instr, true
	}

	value, ok := stock.ParseQuantity(p.EditValue.String())
	if !ok {
		return EditInstruction{}, false
	}
	instr.Value = value
	if action == entity.StockActionReplace {
		// Pedidos abiertos vacíos o no numéricos cuentan como cero.
		instr.OpenOrders, _ = stock.ParseQuantity(p.OpenOrdersStock.String())
	}
	return instr, true
}

// NormalizeLocation limpia el texto de ubicación: espacios, forma Unicode NFC y largo de columna.
func NormalizeLocation(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	if utf8.RuneCountInString(s) > entity.EditLogValueMaxLen {
		s = string([]rune(s)[:entity.EditLogValueMaxLen])
	}
	return s
}
