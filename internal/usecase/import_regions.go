package usecase

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/gateway"
)

// ImportRegionsInput descreve um CSV de regiões exportado pela prefeitura.
// As colunas são localizadas pelo cabeçalho, sem diferenciar maiúsculas.
type ImportRegionsInput struct {
	Level        domain.RegionLevel
	Source       io.Reader
	IDColumn     string
	NameColumn   string
	ParentColumn string

	// IDStart > 0 renumera as linhas em sequência a partir desse valor.
	IDStart int64
	// ParentIDStart > 0 renumera os pais distintos, em ordem crescente, a partir desse valor.
	ParentIDStart int64
}

type ImportRegionsOutput struct {
	Imported int
}

type ImportRegionsUseCase struct {
	regionRepository   gateway.RegionRepository
	transactionManager gateway.TransactionManager
}

func NewImportRegions(regionRepo gateway.RegionRepository, txManager gateway.TransactionManager) *ImportRegionsUseCase {
	return &ImportRegionsUseCase{
		regionRepository:   regionRepo,
		transactionManager: txManager,
	}
}

// Execute faz upsert de todas as linhas numa única transação: ou entra o arquivo inteiro, ou nada.
func (u *ImportRegionsUseCase) Execute(ctx context.Context, input ImportRegionsInput) (*ImportRegionsOutput, error) {
	regions, err := parseRegionsCSV(input)
	if err != nil {
		return nil, err
	}

	err = u.transactionManager.Run(ctx, func(ctxTx context.Context) error {
		transactionObject, ok := gateway.TxFromContext(ctxTx)
		if !ok {
			return fmt.Errorf("%w: transação não encontrada no contexto", domain.ErrTransactionFailed)
		}
		regionRepoTx := u.regionRepository.WithTx(transactionObject)

		checkedParents := make(map[int64]bool)
		for i, region := range regions {
			if region.ParentID != nil && !checkedParents[*region.ParentID] {
				if err := checkRegion(ctxTx, regionRepoTx, region); err != nil {
					return fmt.Errorf("linha %d: %w", i+2, err)
				}
				checkedParents[*region.ParentID] = true
			} else if err := region.Validate(); err != nil {
				return fmt.Errorf("linha %d: %w", i+2, err)
			}

			if err := regionRepoTx.Upsert(ctxTx, region); err != nil {
				return fmt.Errorf("linha %d: %w", i+2, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ImportRegionsOutput{Imported: len(regions)}, nil
}

func parseRegionsCSV(input ImportRegionsInput) ([]*domain.Region, error) {
	_, hasParent := input.Level.Parent()
	if input.NameColumn == "" {
		return nil, fmt.Errorf("%w: coluna de nome obrigatória", domain.ErrInvalidRegion)
	}
	if input.IDColumn == "" && input.IDStart <= 0 {
		return nil, fmt.Errorf("%w: informe a coluna de id ou um id inicial", domain.ErrInvalidRegion)
	}
	if hasParent && input.ParentColumn == "" {
		return nil, fmt.Errorf("%w: coluna do pai obrigatória para %s", domain.ErrInvalidRegion, input.Level)
	}

	// Exportações do Excel vêm com BOM (utf-8-sig).
	reader := bufio.NewReader(input.Source)
	if bom, err := reader.Peek(3); err == nil && string(bom) == "\ufeff" {
		_, _ = reader.Discard(3)
	}

	r := csv.NewReader(reader)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("falha ao ler cabeçalho do CSV: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToUpper(strings.TrimSpace(name))] = i
	}
	column := func(name string) (int, error) {
		if name == "" {
			return -1, nil
		}
		idx, ok := columns[strings.ToUpper(name)]
		if !ok {
			return -1, fmt.Errorf("%w: coluna %q não existe no CSV", domain.ErrInvalidRegion, name)
		}
		return idx, nil
	}

	idIdx, err := column(input.IDColumn)
	if err != nil {
		return nil, err
	}
	nameIdx, err := column(input.NameColumn)
	if err != nil {
		return nil, err
	}
	parentIdx := -1
	if hasParent {
		if parentIdx, err = column(input.ParentColumn); err != nil {
			return nil, err
		}
	}

	var regions []*domain.Region
	line := 1
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("linha %d: %w", line, err)
		}

		region := &domain.Region{
			Level: input.Level,
			Name:  strings.TrimSpace(record[nameIdx]),
		}
		if input.IDStart > 0 {
			region.ID = input.IDStart + int64(len(regions))
		} else if region.ID, err = parseRegionID(record[idIdx]); err != nil {
			return nil, fmt.Errorf("linha %d: %w", line, err)
		}
		if parentIdx >= 0 {
			parentID, err := parseRegionID(record[parentIdx])
			if err != nil {
				return nil, fmt.Errorf("linha %d: %w", line, err)
			}
			region.ParentID = &parentID
		}
		regions = append(regions, region)
	}

	if hasParent && input.ParentIDStart > 0 {
		rebaseParents(regions, input.ParentIDStart)
	}
	return regions, nil
}

// rebaseParents troca os ids de pai por ids consecutivos a partir de start,
// preservando a ordem crescente dos ids originais.
func rebaseParents(regions []*domain.Region, start int64) {
	distinct := make(map[int64]struct{})
	for _, r := range regions {
		distinct[*r.ParentID] = struct{}{}
	}
	ordered := make([]int64, 0, len(distinct))
	for id := range distinct {
		ordered = append(ordered, id)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	mapping := make(map[int64]int64, len(ordered))
	for i, id := range ordered {
		mapping[id] = start + int64(i)
	}
	for _, r := range regions {
		newID := mapping[*r.ParentID]
		r.ParentID = &newID
	}
}

func parseRegionID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id inválido %q", domain.ErrInvalidRegion, raw)
	}
	return id, nil
}
