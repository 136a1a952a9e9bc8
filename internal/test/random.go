package test

import (
	"math/rand"
	"sync"
	"time"
)

const (
	hexDigits   = "0123456789abcdef"
	nameLetters = "abcdefghijklmnopqrstuvwxyz"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomOrderID returns a 32 character lowercase hex id, shaped like the ids the service assigns.
func RandomOrderID() string {
	return randomString(hexDigits, 32)
}

// RandomDishes returns n dish payload entries as a client would send them:
// an id, a name, a price in cents precision, a positive quantity and a free-form note.
func RandomDishes(n int) []any {
	dishes := make([]any, 0, n)
	for i := 0; i < n; i++ {
		dishes = append(dishes, map[string]any{
			"id":       RandomOrderID(),
			"name":     randomString(nameLetters, 3+randomIntn(10)),
			"price":    float64(100+randomIntn(9900)) / 100,
			"quantity": float64(1 + randomIntn(9)),
			"note":     randomString(nameLetters, 1+randomIntn(20)),
		})
	}
	return dishes
}

func randomString(alphabet string, length int) string {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = alphabet[randomIntn(len(alphabet))]
	}
	return string(buf)
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
