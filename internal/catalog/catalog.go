// Package catalog is the static product catalog. Products are immutable
// configuration data loaded once at process start; lookups are pure.
package catalog

import (
	"github.com/shopspring/decimal"

	"inventory-request-service/internal/models"
)

func jpy(v int64) decimal.Decimal   { return decimal.NewFromInt(v) }
func usd(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }
func product(id, name string, price decimal.Decimal, cur, tag string) models.Product {
	return models.Product{
		ID:                id,
		Name:              name,
		Description:       name,
		NativePrice:       price,
		NativeCurrency:    cur,
		AvailableQuantity: 100,
		DistributorTag:    tag,
	}
}

var products = []models.Product{
	product("PKA0020KYSSDPKK", "20kg Planet Pet CP Chicken & Turkey", jpy(17000), "JPY", "Distributor 2"),
	product("PKI0020KYSSDPKK", "20kg Planet Pet CP Lamb, Sweet Potato & Apple", jpy(20000), "JPY", "Distributor 2"),
	product("SFI0012KPPSXZZZ", "12kg Superfood 65 Scottish Salmon Small Breed Dog", jpy(11000), "JPY", "Distributor 2"),
	product("GFJ0012KUPSXZZZ", "12kg GF Duck with Sweet Potato & Orange", jpy(10000), "JPY", "Distributor 2"),
	product("GFE0012KPPSDZZZ", "12kg Light GF Trout with Salmon & Asparagus", jpy(10500), "JPY", "Distributor 2"),
	product("TGE0012KPPSDZZZ", "12kg Light GF Turkey with Sweet Potato, Cranberry", jpy(10500), "JPY", "Distributor 2"),
	product("NGE0006KUPSXZZZ", "6kg Small Breed Lamb Sweet Potato & Mint", jpy(6000), "JPY", "Distributor 1"),
	product("SFM0012KPPSXZZZ", "12kg Superfood 65 Free Range Turkey SmBrd Senior", jpy(10500), "JPY", "Distributor 2"),
	product("DGF0006KUPSXZZZ", "6kg Small Breed GF Duck with Sweet Potato & Orange", jpy(5500), "JPY", "Distributor 2"),
	product("SFL0012KPPSXZZZ", "12kg Superfood 65 British Grass Fed Lamb Adult Dog", jpy(11500), "JPY", "Distributor 1"),
	product("CCT0005KPPSXZZZ", "5kg Connoisseur Cat Adult Turkey & Chicken", jpy(6000), "JPY", "Distributor 1"),
	product("TDP0K070PPIXZZZ", "25 x70g. Dental Treat", jpy(10500), "JPY", "Distributor 1"),
	product("XGC0K070PPIXZZZ", "25 x70g. Calming Treat", jpy(10500), "JPY", "Distributor 1"),
	product("XGF0K070PPIXZZZ", "25 x70g Immune Treat", jpy(10500), "JPY", "Distributor 1"),
	product("NGEPPFAUS", "20kg CP Lamb, Sweet Potato & Apple", jpy(9000), "JPY", "Distributor 1"),
	product("KCPFLambCat", "12.5kg NZ Grass Fed Lamb Cat", jpy(9000), "JPY", "Distributor 1"),
	product("KCPFBeefCat", "12.5kg NZ Grass Fed Beef Cat", jpy(9000), "JPY", "Distributor 1"),
	product("KCPFLamb1", "12.5kg Grain Free New Zeland Grass Fed Lamb Formula - Dogs (NZ)", jpy(6112), "JPY", "Distributor 2"),
	product("KCPFChicken2", "12.5kg Grain Free New Zeland Chicken Formula - Cats (NZ)", jpy(6112), "JPY", "Distributor 2"),
	product("6009688702712", "Premier+ Gas", usd(89.90), "USD", "Distributor 3"),
	product("6009688702583", "COBB Pro Black (Matte base)", usd(45.00), "USD", "Distributor 3"),
	product("6009688702576", "COBB Pro Gas", usd(69.50), "USD", "Distributor 3"),
	product("6009688700145", "Frying Pan and fork", usd(19.75), "USD", "Distributor 3"),
	product("6009688700046", "Frying Dish (Wok)", usd(16.80), "USD", "Distributor 3"),
	product("6001651024463", "Carrier Bag", usd(6.00), "USD", "Distributor 3"),
	product("6009688701036", "Fenced Roast Rack", usd(6.40), "USD", "Distributor 3"),
	product("6009688701005", "Dome Extension with Chicken Roasting Stand in box", usd(10.90), "USD", "Distributor 3"),
	product("6009688701210", "Dome Holder (Pro and Premier)", usd(4.10), "USD", "Distributor 3"),
	product("6009688702958", "BBQ Kit with Fire Grid", usd(18.00), "USD", "Distributor 3"),
	product("6009688702194", "Griddle+", usd(15.90), "USD", "Distributor 3"),
	product("6009688701883", "Stainless Steel Grill Grid", usd(10.50), "USD", "Distributor 3"),
	product("6009688703115", "Round carrier bag in Grey colour", usd(6.50), "USD", "Distributor 3"),
	product("6009688703078", "Gas COBB Grey Carrier bag", usd(7.80), "USD", "Distributor 3"),
}

// All returns every catalog product in directory order.
func All() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// ByID looks up a single product.
func ByID(id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// ByDistributor returns the products carried by one distributor tag.
func ByDistributor(tag string) []models.Product {
	var out []models.Product
	for _, p := range products {
		if p.DistributorTag == tag {
			out = append(out, p)
		}
	}
	return out
}
