package reviews

import (
	"fmt"
	"strconv"
	"time"

	"catalog-service/internal/models"
)

// Parámetros del LCG de 31 bits
const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgMask       = 0x7FFFFFFF

	maxDaysAgo = 180

	// Tope de intentos por slot pedido; con un ratingFilter insatisfacible
	// el generador termina igual y retorna menos registros
	attemptsPerSlot = 50
)

// Pesos acumulados para ratings 1..5 (pesos base 0.05/0.10/0.15/0.30/0.40)
var ratingCumWeights = []float64{0.05, 0.15, 0.30, 0.60, 1.00}

// Plantillas de comentario por rating; cada una lleva un %s para el nombre
// del producto
var commentTemplates = map[int][]string{
	1: {
		"Very disappointed with this %s.",
		"The %s stopped working within a week.",
		"Would not recommend the %s to anyone.",
		"The %s did not match the description at all.",
	},
	2: {
		"The %s is below average, expected more.",
		"Not happy with the %s, build feels cheap.",
		"The %s works but has too many issues.",
		"Mediocre %s, probably returning it.",
	},
	3: {
		"The %s is okay, nothing special.",
		"Decent %s for the price.",
		"The %s does the job, but there are better options.",
		"Average %s, met some of my expectations.",
	},
	4: {
		"Really good %s, minor flaws only.",
		"The %s works great, happy with the purchase.",
		"Solid %s, would buy again.",
		"Very satisfied with the %s overall.",
		"Great value, the %s exceeded my expectations.",
	},
	5: {
		"Absolutely love this %s!",
		"The %s is perfect, exactly what I needed.",
		"Best %s I have ever owned.",
		"Outstanding %s, five stars well deserved.",
		"The %s blew me away, highly recommended.",
	},
}

var reviewerNames = []string{
	"Carlos M.",
	"Ana G.",
	"Luis R.",
	"María F.",
	"Jorge P.",
	"Lucía T.",
	"Diego S.",
	"Elena V.",
}

// seedFromID deriva la semilla de los últimos 8 caracteres hex del ID.
// Si el ID es corto o el sufijo no es hex, la semilla es 0.
func seedFromID(productID string) int64 {
	if len(productID) < 8 {
		return 0
	}
	seed, err := strconv.ParseInt(productID[len(productID)-8:], 16, 64)
	if err != nil {
		return 0
	}
	return seed
}

func nextState(state int64) int64 {
	return (state*lcgMultiplier + lcgIncrement) & lcgMask
}

// ratingFromState mapea el estado a un rating 1..5 por pesos acumulados
func ratingFromState(state int64) int {
	r := float64(state%100) / 100.0
	for i, cum := range ratingCumWeights {
		if cum >= r {
			return i + 1
		}
	}
	return 5
}

// Generate produce hasta limit reseñas sintéticas, reproducibles para los
// mismos (productID, productName, limit, ratingFilter, now). Con ratingFilter
// los estados que no coinciden se descartan sin consumir slot; ratingFilter
// fuera de 1..5 agota los intentos y retorna vacío.
func Generate(productID, productName string, limit int, ratingFilter *int, now time.Time) []models.Review {
	reviews := make([]models.Review, 0)
	if limit <= 0 {
		return reviews
	}

	state := seedFromID(productID)
	maxAttempts := limit * attemptsPerSlot

	for attempts := 0; len(reviews) < limit && attempts < maxAttempts; attempts++ {
		rating := ratingFromState(state)
		if ratingFilter != nil && rating != *ratingFilter {
			state = nextState(state)
			continue
		}

		slot := len(reviews)
		templates := commentTemplates[rating]
		comment := fmt.Sprintf(templates[state%int64(len(templates))], productName)
		reviewer := reviewerNames[(state+int64(slot))%int64(len(reviewerNames))]
		daysAgo := int(state % maxDaysAgo)

		reviews = append(reviews, models.Review{
			ID:       fmt.Sprintf("review_%s_%d", productID, slot),
			Rating:   rating,
			Comment:  comment,
			Reviewer: reviewer,
			Date:     now.AddDate(0, 0, -daysAgo),
			Verified: state%4 != 0,
			Helpful:  max(0, int(state%20)-5),
		})

		state = nextState(state)
	}

	return reviews
}
