package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fidelite-backend/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ObjetWriter interface {
	Create(ctx context.Context, o domain.Objet) (*domain.Objet, error)
}

type VariationWriter interface {
	Create(ctx context.Context, v domain.VariationObjet) (*domain.VariationObjet, error)
}

// Result counts what a run created.
type Result struct {
	Objets     int
	Variations int
}

// CSVImporter reads catalog CSV files and creates objets with their variations.
//
// Expected headers: objet_libelee, objet_points, variation_objet_taille,
// variation_objet_poids. A row with a label starts a new objet; rows with an empty label
// add variations to the previous one.
//
// Run writes through the given writers as it goes and does not undo earlier rows when a
// later one fails. Import wraps a run in one database transaction.
type CSVImporter struct {
	reader     *csv.Reader
	objets     ObjetWriter
	variations VariationWriter
	logger     *zap.Logger
}

func NewCSVImporter(r io.Reader, objets ObjetWriter, variations VariationWriter, logger *zap.Logger) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CSVImporter{
		reader:     csvr,
		objets:     objets,
		variations: variations,
		logger:     logger,
	}
}

type csvObjet struct {
	line       int
	libelle    string
	points     int
	variations []csvVariation
}

type csvVariation struct {
	line   int
	taille string
	poids  decimal.Decimal
}

// Run parses CSV rows and creates objets grouped by label.
func (i *CSVImporter) Run(ctx context.Context) (Result, error) {
	var res Result

	headers, err := i.reader.Read()
	if err != nil {
		return res, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["objet_libelee"]; !ok {
		return res, errors.New("missing objet_libelee column")
	}

	var current *csvObjet
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("read row: %w", err)
		}
		line, _ := i.reader.FieldPos(0)

		obj, variation, err := parseRow(record, index, line)
		if err != nil {
			return res, err
		}

		if obj != nil {
			if current != nil {
				if err := i.save(ctx, current, &res); err != nil {
					return res, err
				}
			}
			current = obj
		}
		if variation == nil {
			continue
		}
		if current == nil {
			return res, fmt.Errorf("line %d: variation without a preceding objet", line)
		}
		current.variations = append(current.variations, *variation)
	}

	if current != nil {
		if err := i.save(ctx, current, &res); err != nil {
			return res, err
		}
	}

	i.logger.Info("catalog imported", zap.Int("objets", res.Objets), zap.Int("variations", res.Variations))
	return res, nil
}

func (i *CSVImporter) save(ctx context.Context, row *csvObjet, res *Result) error {
	libelle := row.libelle
	created, err := i.objets.Create(ctx, domain.Objet{Libelle: &libelle, Points: row.points})
	if err != nil {
		return fmt.Errorf("line %d: create objet %q: %w", row.line, row.libelle, err)
	}
	res.Objets++

	for _, v := range row.variations {
		variation := domain.VariationObjet{Poids: v.poids, ObjetID: &created.ID}
		if v.taille != "" {
			taille := v.taille
			variation.Taille = &taille
		}
		if _, err := i.variations.Create(ctx, variation); err != nil {
			return fmt.Errorf("line %d: create variation of %q: %w", v.line, row.libelle, err)
		}
		res.Variations++
	}
	i.logger.Debug("objet imported", zap.Int64("objet_id", created.ID), zap.Int("variations", len(row.variations)))
	return nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	return idx
}

// parseRow returns the objet a row opens (if it has a label) and the variation it carries
// (if it has a size or a weight). Blank rows yield neither.
func parseRow(record []string, index map[string]int, line int) (*csvObjet, *csvVariation, error) {
	libelle := pick(record, index, "objet_libelee")
	pointsStr := pick(record, index, "objet_points")
	taille := pick(record, index, "variation_objet_taille")
	poidsStr := pick(record, index, "variation_objet_poids")

	var obj *csvObjet
	if libelle != "" {
		obj = &csvObjet{line: line, libelle: libelle}
		if pointsStr != "" {
			points, err := strconv.Atoi(pointsStr)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: invalid objet_points %q", line, pointsStr)
			}
			obj.points = points
		}
	} else if pointsStr != "" {
		return nil, nil, fmt.Errorf("line %d: objet_points without objet_libelee", line)
	}

	if taille == "" && poidsStr == "" {
		return obj, nil, nil
	}
	variation := &csvVariation{line: line, taille: taille}
	if poidsStr != "" {
		poids, err := decimal.NewFromString(strings.ReplaceAll(poidsStr, ",", "."))
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: invalid variation_objet_poids %q", line, poidsStr)
		}
		variation.poids = poids
	}
	return obj, variation, nil
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
