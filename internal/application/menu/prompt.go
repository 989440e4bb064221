package menu

import (
	"fmt"
	"strings"

	"github.com/jhoicas/kondate-api/internal/domain/entity"
	"github.com/jhoicas/kondate-api/internal/domain/menu"
)

// BuildPrompt arma la instrucción para el servicio generativo: porciones, momento del día,
// cada ingrediente con cantidad, unidad y precio unitario, y el formato JSON esperado.
// El precio se pide en 0; el servidor lo recalcula siempre.
func BuildPrompt(ledger []entity.IngredientStock, servings int, mealTime string, candidates int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d人分の%sの献立を%dつ提案してください。\n", servings, mealTime, candidates)
	sb.WriteString("使える食材は次のリストだけです（名前: 数量 単位 / 単価）。数量を超えて使わないでください。\n")
	for _, s := range ledger {
		fmt.Fprintf(&sb, "- %s: %s %s / %s円\n", s.Name, s.Quantity.String(), s.Unit, s.PricePerUnit.Round(2).String())
	}
	sb.WriteString("\n次の形式の JSON オブジェクトだけを返してください。\n")
	fmt.Fprintf(&sb, `{"menus":[{"name":"料理名","description":"作り方（3〜5ステップ）と味・栄養の特徴","price":0,`+
		`"youtubeUrl":"%s料理名","ingredientsUsed":[{"name":"食材名","quantity":0,"unit":"単位"}]}]}`, menu.SearchURLPrefix)
	sb.WriteString("\n\nルール:\n")
	fmt.Fprintf(&sb, "- menus には %d 件の献立を入れてください。\n", candidates)
	sb.WriteString("- price は必ず 0 にしてください。\n")
	sb.WriteString("- ingredientsUsed の name と unit はリストの表記と完全に一致させ、quantity は数値で書いてください。\n")
	sb.WriteString("- 調理時間は20分以内、醤油・塩・砂糖・油など一般的な調味料は自由に使って構いません。\n")
	return sb.String()
}
