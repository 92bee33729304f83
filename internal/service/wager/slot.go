package wager

import (
	"wager_backend/internal/config"
	"wager_backend/internal/model"
	"wager_backend/pkg/rng"
)

const (
	// Барабаны
	slotReels = 3
	// Ряды
	slotRows = 3
)

// Фиксированные линии поля 3x3: три горизонтали и две диагонали.
// Линия задаёт номер ряда на каждом барабане.
var slotPaylines = [slotMaxLines][slotReels]int{
	{0, 0, 0},
	{1, 1, 1},
	{2, 2, 2},
	{0, 1, 2},
	{2, 1, 0},
}

// resolveSlot заполняет поле взвешенным выбором символов и оценивает
// первые Lines линий. Линия выигрывает, когда все три символа совпали.
// Выплата считается одной суммой stake * Σvalue / lines, целочисленное
// деление округляет вниз один раз в конце.
func resolveSlot(p model.SlotParams, stake int64, src rng.Source, symbols []config.SlotSymbol) model.Result {
	weights := make([]int, len(symbols))
	for i, s := range symbols {
		weights[i] = s.Weight
	}

	// Поле набирается по барабанам: grid[reel][row]
	var grid [slotReels][slotRows]string
	for reel := 0; reel < slotReels; reel++ {
		for row := 0; row < slotRows; row++ {
			grid[reel][row] = symbols[rng.WeightedIndex(src, weights)].Name
		}
	}

	valueByName := make(map[string]int64, len(symbols))
	for _, s := range symbols {
		valueByName[s.Name] = s.Value
	}

	// line wins
	var lineWins []model.SlotLineWin
	var sumValues int64
	for i := 0; i < p.Lines; i++ {
		line := slotPaylines[i]
		first := grid[0][line[0]]
		if grid[1][line[1]] != first || grid[2][line[2]] != first {
			continue
		}
		val := valueByName[first]
		lineWins = append(lineWins, model.SlotLineWin{Line: i, Symbol: first, Value: val})
		sumValues += val
	}

	var amount int64
	if sumValues > 0 {
		amount = stake * sumValues / int64(p.Lines)
	}

	return model.Result{
		Win:    len(lineWins) > 0,
		Amount: amount,
		Slot: &model.SlotDetails{
			Lines:    p.Lines,
			Grid:     grid,
			LineWins: lineWins,
		},
	}
}
