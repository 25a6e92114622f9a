package product

import (
	"github.com/fekuna/omnipos-catalog-service/internal/category/naming"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

// Assemble folds flat join rows into one record per product. Products keep the
// order of their first row and categories the order of their rows; rows with
// NULL category columns contribute the product only.
func Assemble(rows []model.ProductCategoryRow) []model.ProductWithCategories {
	out := make([]model.ProductWithCategories, 0)
	index := make(map[int64]int)

	for _, row := range rows {
		i, ok := index[row.ProductID]
		if !ok {
			i = len(out)
			index[row.ProductID] = i
			out = append(out, model.ProductWithCategories{
				ID:         row.ProductID,
				Name:       row.ProductName,
				Price:      row.Price,
				Categories: []model.CategoryRef{},
			})
		}
		if !row.CategoryID.Valid {
			continue
		}
		out[i].Categories = append(out[i].Categories, model.CategoryRef{
			ID:   row.CategoryID.Int64,
			Name: naming.MustDisplay(row.CategoryName.String),
		})
	}
	return out
}
