package mockstore

import (
	"time"

	"billed/internal/newbill"
)

// Fixtures returns the four sample bills of the employee a@a.
func Fixtures() []*newbill.Bill {
	created := time.Date(2004, 4, 4, 0, 0, 0, 0, time.UTC)
	return []*newbill.Bill{
		{
			ID:         "47qAXb6fIm2zOKkLzMro",
			Email:      "a@a",
			Type:       "Hôtel et logement",
			Name:       "encore",
			Amount:     400,
			Date:       "2004-04-04",
			VAT:        "80",
			Pct:        20,
			Commentary: "séminaire billed",
			FileURL:    "https://test.storage.tld/v0/b/billable-677b6.a%E2%80%A6f-1.jpg",
			FileName:   "preview-facture-free-201801-pdf-1.jpg",
			Status:     newbill.StatusPending,
			CreatedAt:  created,
		},
		{
			ID:         "BeKy5Mo4jkmdfPGYpTxZ",
			Email:      "a@a",
			Type:       "Transports",
			Name:       "test1",
			Amount:     100,
			Date:       "2001-01-01",
			VAT:        "",
			Pct:        20,
			Commentary: "plop",
			FileURL:    "https://firebasestorage.googleapis.com/v0/b/billable-677b6.a%E2%80%A6.png",
			FileName:   "1592770761.jpeg",
			Status:     newbill.StatusRefused,
			CreatedAt:  created,
		},
		{
			ID:         "UIUZtnPQvnbFnB0ozvJh",
			Email:      "a@a",
			Type:       "Services en ligne",
			Name:       "test3",
			Amount:     300,
			Date:       "2003-03-03",
			VAT:        "60",
			Pct:        20,
			Commentary: "",
			FileURL:    "https://firebasestorage.googleapis.com/v0/b/billable-677b6.a%E2%80%A6.png",
			FileName:   "facture-client-php-exportee-dans-document-pdf-enregistre-sur-disque-dur.png",
			Status:     newbill.StatusAccepted,
			CreatedAt:  created,
		},
		{
			ID:         "qcCK3SzECmaZAGRrHjaC",
			Email:      "a@a",
			Type:       "Restaurants et bars",
			Name:       "test2",
			Amount:     200,
			Date:       "2002-02-02",
			VAT:        "40",
			Pct:        20,
			Commentary: "test2",
			FileURL:    "https://firebasestorage.googleapis.com/v0/b/billable-677b6.a%E2%80%A6.png",
			FileName:   "preview-facture-free-201801-pdf-1.jpg",
			Status:     newbill.StatusRefused,
			CreatedAt:  created,
		},
	}
}
