package helper

import (
	"fmt"

	"github.com/gosimple/slug"
)

// GenerateUniqueSlug slugifies name and appends -1, -2, ... until taken reports false.
func GenerateUniqueSlug(name string, taken func(string) (bool, error)) (string, error) {
	base := slug.Make(name)
	if base == "" {
		base = "item"
	}
	result := base
	for i := 1; ; i++ {
		exists, err := taken(result)
		if err != nil {
			return "", err
		}
		if !exists {
			return result, nil
		}
		result = fmt.Sprintf("%s-%d", base, i)
	}
}
