package cli

import (
	"fmt"
	"strings"
)

type CategoryCmd struct {
	Add    CategoryAddCmd    `cmd:"" help:"Add a new category."`
	List   CategoryListCmd   `cmd:"" help:"List categories."`
	Rename CategoryRenameCmd `cmd:"" help:"Rename a category."`
	Delete CategoryDeleteCmd `cmd:"" help:"Delete a category."`
}

type CategoryAddCmd struct {
	Title string `arg:"" help:"Category title."`
}

func (c *CategoryAddCmd) Run(ctx *Context) error {
	title := strings.TrimSpace(c.Title)
	if title == "" {
		return fmt.Errorf("category title cannot be empty")
	}
	if err := ctx.Store.CreateCategory(title); err != nil {
		return err
	}
	fmt.Printf("Added category: %s\n", title)
	return nil
}

type CategoryListCmd struct{}

func (c *CategoryListCmd) Run(ctx *Context) error {
	titles, err := ctx.Store.GetCategoryTitles()
	if err != nil {
		return err
	}
	if len(titles) == 0 {
		fmt.Println("No categories found.")
		return nil
	}
	for _, title := range titles {
		fmt.Println(title)
	}
	return nil
}

type CategoryRenameCmd struct {
	Old string `arg:"" help:"Current category title."`
	New string `arg:"" help:"New category title."`
}

func (c *CategoryRenameCmd) Run(ctx *Context) error {
	newTitle := strings.TrimSpace(c.New)
	if newTitle == "" {
		return fmt.Errorf("category title cannot be empty")
	}
	if err := ctx.Store.RenameCategory(c.Old, newTitle); err != nil {
		return err
	}
	fmt.Printf("Renamed category %q to %q\n", c.Old, newTitle)
	return nil
}

type CategoryDeleteCmd struct {
	Title      string `arg:"" help:"Category title to delete."`
	ReassignTo string `help:"Category that absorbs the deleted category's trackers."`
}

func (c *CategoryDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteCategory(c.Title, c.ReassignTo); err != nil {
		return err
	}
	fmt.Printf("Deleted category: %s\n", c.Title)
	return nil
}
