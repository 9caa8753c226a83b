package util

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// IsNotEmpty checks if value stored at given key is empty.
// if it is empty it returns an error.
func IsNotEmpty(value interface{}, key string) error {
	s, ok := value.(string)
	if !ok {
		return errors.New(fmt.Sprintf("Value for %s needs to be a string.", key))
	}

	if len(s) == 0 {
		return errors.New(fmt.Sprintf("Value for %s cannot be empty.", key))
	}
	return nil

}

// IsInt checks if values stored at a given key is an int.
func IsInt(value interface{}, key string) error {
	s, _ := value.(string)
	_, err := strconv.Atoi(s)
	if err != nil {
		return errors.New(fmt.Sprintf("Value for %s needs to be an integer.", key))
	}
	return nil
}

// IsEmptyOrFile checks if value stored at a given key is either empty or the path of an existing regular file.
func IsEmptyOrFile(value interface{}, key string) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	info, err := os.Stat(s)
	if err != nil || info.IsDir() {
		return errors.New(fmt.Sprintf("Value for %s needs to be an existing file.", key))
	}
	return nil
}
