package domain

// Subcategory is a named slice of a category, e.g. "Pro" under "iPhones".
type Subcategory struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
	Slug string `yaml:"slug" json:"slug"`
}

// Category is a browsable top-level grouping of products. The product's
// category field holds the category Name.
type Category struct {
	ID            string        `yaml:"id" json:"id"`
	Name          string        `yaml:"name" json:"name"`
	Slug          string        `yaml:"slug" json:"slug"`
	Image         string        `yaml:"image" json:"image"`
	Subcategories []Subcategory `yaml:"subcategories" json:"subcategories"`
}

// Clone returns a deep copy.
func (c Category) Clone() Category {
	out := c
	out.Subcategories = append([]Subcategory(nil), c.Subcategories...)
	return out
}
