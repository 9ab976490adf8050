package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/skinsync/skinsync/internal/models"
	"github.com/skinsync/skinsync/internal/services"
)

// SwitchTab changes the active routine tab (morning or night).
func (a *App) SwitchTab(ctx context.Context, arg string) error {
	switch arg {
	case "morning":
		a.tab = models.SlotMorning
	case "night":
		a.tab = models.SlotNight
	default:
		printlnFn("Usage: tab <morning|night>")
		return nil
	}
	printlnFn("Switched to the", arg, "routine.")
	return nil
}

// ListProducts shows the active tab's products with completion marks.
func (a *App) ListProducts(ctx context.Context) error {
	if a.user == nil {
		printlnFn("Log in first.")
		return nil
	}

	all, err := a.routine.ProductsForSlot(ctx, a.user.ID, a.tab)
	if err != nil {
		printlnFn("Failed to list products:", err.Error())
		return err
	}
	if len(all) == 0 {
		printlnFn("No products in the", string(a.tab), "routine yet. Use 'add'.")
		return nil
	}

	entry, err := a.routine.TodayLog(ctx, a.user.ID)
	if err != nil {
		printlnFn("Failed to read today's log:", err.Error())
		return err
	}

	for i, p := range all {
		mark := " "
		if entry != nil && entry.Completed(p.ID) {
			mark = "x"
		}
		printlnFn(fmt.Sprintf("%2d. [%s] %s — %s (%s)", i+1, mark, p.Name, p.Brand, p.Type))
	}
	return nil
}

func (a *App) AddProduct(ctx context.Context) error {
	if a.user == nil {
		printlnFn("Log in first.")
		return nil
	}

	name, err := GetSimpleText(a.reader, "Product name", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		printlnFn("Product name is required.")
		return nil
	}
	brand, err := GetSimpleText(a.reader, "Brand", os.Stdout)
	if err != nil {
		return err
	}
	typeIdx, err := GetChoice(a.reader, "Type", enumLabels(models.ProductTypes), 0, os.Stdout)
	if err != nil {
		return err
	}
	slotIdx, err := GetChoice(a.reader, "Routine", []string{"morning", "night", "both"}, slotDefault(a.tab), os.Stdout)
	if err != nil {
		return err
	}

	p, err := a.routine.AddProduct(ctx, a.user.ID, services.NewProduct{
		Name:    name,
		Brand:   brand,
		Type:    models.ProductTypes[typeIdx],
		Morning: slotIdx == 0 || slotIdx == 2,
		Night:   slotIdx == 1 || slotIdx == 2,
	})
	if err != nil {
		printlnFn("Failed to add product:", err.Error())
		return err
	}

	printlnFn("Added", p.Name+".")
	return nil
}

func (a *App) DeleteProduct(ctx context.Context, arg string) error {
	if a.user == nil {
		printlnFn("Log in first.")
		return nil
	}

	p, ok, err := a.pickProduct(ctx, arg, "Usage: del <number from 'products'>")
	if err != nil || !ok {
		return err
	}

	if err := a.routine.DeleteProduct(ctx, a.user.ID, p.ID); err != nil {
		printlnFn("Failed to delete product:", err.Error())
		return err
	}
	printlnFn("Deleted", p.Name+".")
	return nil
}

// Toggle flips a product's completion in today's log for the active tab.
func (a *App) Toggle(ctx context.Context, arg string) error {
	if a.user == nil {
		printlnFn("Log in first.")
		return nil
	}

	p, ok, err := a.pickProduct(ctx, arg, "Usage: toggle <number from 'products'>")
	if err != nil || !ok {
		return err
	}

	entry, err := a.routine.ToggleProduct(ctx, a.user.ID, p.ID, a.tab)
	if err != nil {
		printlnFn("Failed to toggle product:", err.Error())
		return err
	}

	state := "not done"
	if entry.Completed(p.ID) {
		state = "done"
	}
	printlnFn(p.Name, "marked", state+".")
	return nil
}

func (a *App) Today(ctx context.Context) error {
	if a.user == nil {
		printlnFn("Log in first.")
		return nil
	}

	status, err := a.routine.TodayStatus(ctx, a.user.ID)
	if err != nil {
		printlnFn("Failed to read today's status:", err.Error())
		return err
	}

	printlnFn("Morning:", completionLabel(status.Morning))
	printlnFn("Night:  ", completionLabel(status.Night))
	return nil
}

func (a *App) Score(ctx context.Context) error {
	if a.user == nil {
		printlnFn("Log in first.")
		return nil
	}

	score, err := a.routine.HealthScore(ctx, a.user.ID)
	if err != nil {
		printlnFn("Failed to compute score:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Health score: %d/100", score))
	return nil
}

// pickProduct resolves a 1-based index (as shown by ListProducts) within the
// active tab. ok is false when the argument is missing or out of range.
func (a *App) pickProduct(ctx context.Context, arg string, usage string) (*models.Product, bool, error) {
	if arg == "" {
		printlnFn(usage)
		return nil, false, nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		printlnFn(usage)
		return nil, false, nil
	}

	all, err := a.routine.ProductsForSlot(ctx, a.user.ID, a.tab)
	if err != nil {
		printlnFn("Failed to list products:", err.Error())
		return nil, false, err
	}
	if n < 1 || n > len(all) {
		printlnFn("No such product in the", string(a.tab), "routine.")
		return nil, false, nil
	}
	return &all[n-1], true, nil
}

func slotDefault(tab models.Slot) int {
	if tab == models.SlotNight {
		return 1
	}
	return 0
}

func completionLabel(done bool) string {
	if done {
		return "COMPLETED"
	}
	return "INCOMPLETE"
}
