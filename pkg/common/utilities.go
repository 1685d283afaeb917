package common

import (
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
)

func MinOf[T int | int64 | float64](vars ...T) T {
	min := vars[0]

	for _, i := range vars {
		if min > i {
			min = i
		}
	}

	return min
}

func MaxOf[T int | int64 | float64](vars ...T) T {
	max := vars[0]

	for _, i := range vars {
		if max < i {
			max = i
		}
	}

	return max
}

func Check(e error) {
	if e != nil {
		log.Fatal(e)
	}
}

// ModelName maps a model id onto the name of its definition file.
func ModelName(id int) string {
	return fmt.Sprintf("%d%s", id, ModelFileSuffix)
}

// ModelIDs enumerates [0, count) without the excluded ids, in ascending order.
func ModelIDs(count int, excluded []int) []int {
	skip := make(map[int]struct{}, len(excluded))
	for _, id := range excluded {
		skip[id] = struct{}{}
	}

	var result []int
	for i := 0; i < count; i++ {
		if _, ok := skip[i]; ok {
			continue
		}
		result = append(result, i)
	}

	sort.Ints(result)
	return result
}
