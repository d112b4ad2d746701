package tablestore

import (
	"context"
)

// Provider табличное хранилище, являющееся основной системой учета.
// ReadRange возвращает nil без ошибки, если диапазон не найден (нет такого листа).
type Provider interface {
	ReadRange(ctx context.Context, rangeStr string) ([][]string, error)
	AppendRow(ctx context.Context, sheet string, cells []string) error
	SetCells(ctx context.Context, sheet string, cells []Cell) error
}

var Instance Provider

// Cell адрес ячейки в нумерации листа, начиная с 1
type Cell struct {
	Row   int
	Col   int
	Value string
}

func SetCell(ctx context.Context, p Provider, sheet string, row, col int, value string) error {
	return p.SetCells(ctx, sheet, []Cell{{Row: row, Col: col, Value: value}})
}
