// Command diagnose_catalog probes the upstream catalog service for each
// configured area code and reports reachability, page shape and identifier
// formats, alongside the local pet-policy coverage for the same area. Run it
// manually when listings look empty or annotations stop matching:
//
//	CATALOG_BASE_URL=... CATALOG_API_KEY=... DATABASE_URL=... go run scripts/diagnose_catalog.go
package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// AreaDiagnostic is the per-area probe result.
type AreaDiagnostic struct {
	AreaCode       string `json:"area_code"`
	Status         string `json:"status"` // "OK", "HTTP_ERROR", "PARSE_ERROR", "EMPTY", "TIMEOUT"
	HTTPCode       int    `json:"http_code"`
	ItemCount      int    `json:"item_count"`
	TotalCount     int64  `json:"total_count"`
	NumericIDs     int    `json:"numeric_ids"`
	PaddedIDs      int    `json:"padded_ids"` // identifiers with surrounding whitespace
	PolicyCoverage int64  `json:"policy_coverage"`
	ErrorMessage   string `json:"error_message,omitempty"`
	ResponseTimeMs int64  `json:"response_time_ms"`
}

type pageResponse struct {
	Items []struct {
		ContentID json.RawMessage `json:"contentId"`
	} `json:"items"`
	TotalCount int64 `json:"totalCount"`
}

func main() {
	baseURL := os.Getenv("CATALOG_BASE_URL")
	if baseURL == "" {
		log.Fatal("CATALOG_BASE_URL must be set")
	}
	apiKey := os.Getenv("CATALOG_API_KEY")

	areas := strings.Split(os.Getenv("DIAGNOSE_AREA_CODES"), ",")
	if len(areas) == 1 && areas[0] == "" {
		// Default probe set: the major metropolitan areas.
		areas = []string{"1", "2", "6", "31", "32", "39"}
	}

	db := openDatabase()
	defer func() {
		if db != nil {
			if err := db.Close(); err != nil {
				log.Printf("Failed to close database: %v", err)
			}
		}
	}()

	client := &http.Client{Timeout: 15 * time.Second}

	var results []AreaDiagnostic
	for _, area := range areas {
		area = strings.TrimSpace(area)
		if area == "" {
			continue
		}
		d := probeArea(client, baseURL, apiKey, area)
		if db != nil {
			d.PolicyCoverage = policyCoverage(db, area)
		}
		results = append(results, d)
		fmt.Printf("area %-4s %-12s http=%d items=%d total=%d coverage=%d %s\n",
			d.AreaCode, d.Status, d.HTTPCode, d.ItemCount, d.TotalCount, d.PolicyCoverage, d.ErrorMessage)
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal results: %v", err)
	}
	if err := os.WriteFile("catalog_diagnostics.json", out, 0o644); err != nil {
		log.Fatalf("Failed to write results: %v", err)
	}
	fmt.Println("wrote catalog_diagnostics.json")
}

func openDatabase() *sql.DB {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Println("DATABASE_URL not set, skipping coverage checks")
		return nil
	}
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Printf("Failed to open database, skipping coverage checks: %v", err)
		return nil
	}
	return db
}

func probeArea(client *http.Client, baseURL, apiKey, area string) AreaDiagnostic {
	d := AreaDiagnostic{AreaCode: area}

	reqURL := fmt.Sprintf("%s/places?%s", strings.TrimRight(baseURL, "/"), url.Values{
		"areaCode": {area},
		"page":     {"1"},
		"pageSize": {"20"},
	}.Encode())

	req, err := http.NewRequest(http.MethodGet, reqURL, nil)
	if err != nil {
		d.Status = "HTTP_ERROR"
		d.ErrorMessage = err.Error()
		return d
	}
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	start := time.Now()
	resp, err := client.Do(req)
	d.ResponseTimeMs = time.Since(start).Milliseconds()
	if err != nil {
		if strings.Contains(err.Error(), "Client.Timeout") {
			d.Status = "TIMEOUT"
		} else {
			d.Status = "HTTP_ERROR"
		}
		d.ErrorMessage = err.Error()
		return d
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("Failed to close response body: %v", err)
		}
	}()

	d.HTTPCode = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		d.Status = "HTTP_ERROR"
		return d
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		d.Status = "HTTP_ERROR"
		d.ErrorMessage = err.Error()
		return d
	}

	var page pageResponse
	if err := json.Unmarshal(body, &page); err != nil {
		d.Status = "PARSE_ERROR"
		d.ErrorMessage = err.Error()
		return d
	}

	d.ItemCount = len(page.Items)
	d.TotalCount = page.TotalCount
	for _, it := range page.Items {
		raw := string(it.ContentID)
		if !strings.HasPrefix(raw, `"`) {
			d.NumericIDs++
			continue
		}
		trimmed := strings.Trim(raw, `"`)
		if trimmed != strings.TrimSpace(trimmed) {
			d.PaddedIDs++
		}
	}

	if d.ItemCount == 0 {
		d.Status = "EMPTY"
	} else {
		d.Status = "OK"
	}
	return d
}

func policyCoverage(db *sql.DB, area string) int64 {
	var n int64
	err := db.QueryRow("SELECT COUNT(*) FROM pet_policies WHERE area_code = $1", area).Scan(&n)
	if err != nil {
		log.Printf("Coverage query failed for area %s: %v", area, err)
		return 0
	}
	return n
}
