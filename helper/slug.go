package helper

import (
	"fmt"

	"repair_shop/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniquePartSku derives a unique SKU slug from the part name,
// suffixing a counter on collision.
func GenerateUniquePartSku(tx *gorm.DB, name string) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.Inventory{}).
			Where("sku = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
