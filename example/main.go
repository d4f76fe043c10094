package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/meikuraledutech/decision"
	"github.com/meikuraledutech/decision/postgres"
)

func main() {
	ctx := context.Background()

	// ── Build a charge decision in code ───────────────────────────────
	input, err := decision.NewFieldsNode("request", decision.NodeTypeInput, decision.Position{X: 100, Y: 200},
		decision.Field{Field: "account.averageBalance", Name: "Average balance", DataType: "number"},
		decision.Field{Field: "account.type", Name: "Account type", DataType: "string"},
	)
	if err != nil {
		log.Fatalf("input node: %v", err)
	}

	table, err := decision.NewDecisionTableNode("charges", decision.Position{X: 400, Y: 200}, decision.DecisionTable{
		HitPolicy: decision.HitPolicyFirst,
		Inputs:    []json.RawMessage{json.RawMessage(`{"id": "in1", "name": "Balance", "field": "account.averageBalance"}`)},
		Outputs:   []json.RawMessage{json.RawMessage(`{"id": "out1", "name": "Charge", "field": "charge"}`)},
		Rules: []json.RawMessage{
			json.RawMessage(`{"_id": "r1", "in1": "< 1000", "out1": "250"}`),
			json.RawMessage(`{"_id": "r2", "in1": "", "out1": "0"}`),
		},
	})
	if err != nil {
		log.Fatalf("decision table: %v", err)
	}

	output, err := decision.NewFieldsNode("response", decision.NodeTypeOutput, decision.Position{X: 700, Y: 200},
		decision.Field{Field: "charge", Name: "Charge", DataType: "number"},
	)
	if err != nil {
		log.Fatalf("output node: %v", err)
	}

	doc := decision.Document{
		ContentType: decision.ContentType,
		Nodes:       []decision.Node{input, table, output},
		Edges: []decision.Edge{
			{ID: "e1", SourceID: "request", TargetID: "charges"},
			{ID: "e2", SourceID: "charges", TargetID: "response"},
			// Deliberately dangling, to show a failing report.
			{ID: "e3", SourceID: "charges", TargetID: "audit"},
		},
	}

	data, err := json.Marshal(doc)
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}

	// ── Validate ──────────────────────────────────────────────────────
	report := decision.New().ValidateBytes("amb-charges", data)
	fmt.Printf("valid: %v\n", report.Valid)
	for _, m := range report.Messages() {
		fmt.Println("  " + m)
	}

	// ── Persist (optional) ────────────────────────────────────────────
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		fmt.Println("\nDATABASE_URL is not set, skipping storage")
		printJSON(report)
		return
	}

	pg, pool, err := postgres.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	var store decision.Store = pg

	id, err := store.SaveReport(ctx, report)
	if err != nil {
		log.Fatalf("save report: %v", err)
	}
	fmt.Printf("\nreport saved: %s\n", id)

	stored, err := store.GetReport(ctx, id)
	if err != nil {
		log.Fatalf("get report: %v", err)
	}
	printJSON(stored)

	if err := store.DeleteReport(ctx, id); err != nil {
		log.Fatalf("delete: %v", err)
	}
	fmt.Println("\nreport deleted")
}

func printJSON(v any) {
	out, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(out))
}
