package menu

import "fmt"

type Food struct {
	UID         string
	Name        string
	Description string
	Price       int64
	ImageURL    string
	Category    string
}

func (f Food) GetPriceFormatted() string {
	return fmt.Sprintf("%d đ", f.Price)
}
