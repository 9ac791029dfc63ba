package service

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/ghanizadeh/wellProdInjAnalysis/internal/config"
	"github.com/ghanizadeh/wellProdInjAnalysis/internal/dataset"
	"github.com/ghanizadeh/wellProdInjAnalysis/internal/models"
	"github.com/ghanizadeh/wellProdInjAnalysis/internal/repository"
	"github.com/ghanizadeh/wellProdInjAnalysis/internal/state"
	"github.com/ghanizadeh/wellProdInjAnalysis/pkg/ws"
)

// 数据集种类
const (
	KindWells      = "wells"
	KindProduction = "production"
	KindInjection  = "injection"
)

// ErrNotReady 三个文件尚未齐全时返回，提示语对用户展示
var ErrNotReady = errors.New("Please upload all three files to generate the map and plots.")

// DashboardService 数据看板服务
// 上传替换工作区数据，所有派生结果（分类、地图、历史图）每次请求重新计算
type DashboardService struct {
	cfg     *config.Config
	logger  *zap.Logger
	repo    *repository.Workspace
	machine *state.Machine
	hub     *ws.Hub
}

// NewDashboardService 创建看板服务
func NewDashboardService(
	cfg *config.Config,
	logger *zap.Logger,
	repo *repository.Workspace,
	hub *ws.Hub,
) *DashboardService {
	svc := &DashboardService{
		cfg:    cfg,
		logger: logger,
		repo:   repo,
		hub:    hub,
	}

	svc.machine = state.NewMachine(func(from, to string) {
		logger.Info("Workspace state changed",
			zap.String("from", from),
			zap.String("to", to),
		)
	})

	return svc
}

// TableStatus 单个数据表的上传状态
type TableStatus struct {
	Loaded bool `json:"loaded"`
	Rows   int  `json:"rows"`
}

// Status 工作区快照（/api/status 和 WebSocket 推送共用）
type Status struct {
	State      string      `json:"state"`
	Since      time.Time   `json:"since"`
	WellList   TableStatus `json:"well_list"`
	Production TableStatus `json:"production"`
	Injection  TableStatus `json:"injection"`
}

// Options 多选控件的候选 UWI 列表
type Options struct {
	Production []string `json:"production"`
	Injection  []string `json:"injection"`
}

// AttachDataset 解析并存入一个上传文件，成功后推进状态机并广播
func (s *DashboardService) AttachDataset(kind string, r io.Reader, name string) error {
	switch kind {
	case KindWells:
		wl, err := dataset.ReadWellList(r, name)
		if err != nil {
			return err
		}
		s.repo.SetWellList(wl)
	case KindProduction:
		p, err := dataset.ReadProduction(r, name)
		if err != nil {
			return err
		}
		s.repo.SetProduction(p)
	case KindInjection:
		inj, err := dataset.ReadInjection(r, name)
		if err != nil {
			return err
		}
		s.repo.SetInjection(inj)
	default:
		return fmt.Errorf("unknown dataset kind: %s", kind)
	}

	if s.machine.CanTransition(state.EventAttach) {
		if err := s.machine.Trigger(state.EventAttach); err != nil {
			s.logger.Error("Failed to advance workspace state", zap.Error(err))
		}
	}
	if s.repo.Complete() && s.machine.CanTransition(state.EventComplete) {
		if err := s.machine.Trigger(state.EventComplete); err != nil {
			s.logger.Error("Failed to advance workspace state", zap.Error(err))
		}
	}

	s.logger.Info("Dataset attached",
		zap.String("kind", kind),
		zap.String("file", name),
		zap.String("state", s.machine.Current()),
	)

	s.hub.BroadcastWorkspaceUpdate(s.Status())
	return nil
}

// Reset 清空工作区
func (s *DashboardService) Reset() {
	s.repo.Reset()
	if s.machine.Current() != state.StateEmpty {
		if err := s.machine.Trigger(state.EventReset); err != nil {
			s.logger.Error("Failed to reset workspace state", zap.Error(err))
		}
	}

	s.logger.Info("Workspace reset")
	s.hub.BroadcastWorkspaceUpdate(s.Status())
}

// Status 当前工作区快照
func (s *DashboardService) Status() Status {
	wells, production, injection := s.repo.Counts()
	return Status{
		State:      s.machine.Current(),
		Since:      s.machine.Since(),
		WellList:   tableStatus(wells),
		Production: tableStatus(production),
		Injection:  tableStatus(injection),
	}
}

func tableStatus(rows int) TableStatus {
	if rows < 0 {
		return TableStatus{}
	}
	return TableStatus{Loaded: true, Rows: rows}
}

// WellsTable 分类后的井列表（表格展示：UWI / Well_ID / Well_Type / Deviation_Type）
func (s *DashboardService) WellsTable(includeUnknown bool) ([]models.Well, error) {
	wl, prod, inj, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return PrepareWells(wl, prod, inj, includeUnknown, s.newRNG()), nil
}

// WellMap 井位分布图
func (s *DashboardService) WellMap(includeUnknown bool, labelMode string) (*models.Figure, error) {
	wells, err := s.WellsTable(includeUnknown)
	if err != nil {
		return nil, err
	}
	return BuildWellMap(wells, labelMode), nil
}

// WellOptions 生产/注水多选控件的候选 UWI
func (s *DashboardService) WellOptions() (*Options, error) {
	_, prod, inj, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return &Options{
		Production: prod.UWIs,
		Injection:  inj.UWIs,
	}, nil
}

// Charts 按选中的井构建历史图，顺序与原看板展示一致：
// 生产+注水同时选中时出三张对比图，仅注水出水对比图，选中生产井时追加两张产量对比图
func (s *DashboardService) Charts(prodWells, injWells []string) ([]models.NamedFigure, error) {
	_, prod, inj, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	var figures []models.NamedFigure
	if len(prodWells) > 0 && len(injWells) > 0 {
		figures = append(figures,
			models.NamedFigure{Name: "water_inj_prod", Figure: BuildWaterInjProd(prod, inj, prodWells, injWells)},
			models.NamedFigure{Name: "gas_inj_prod", Figure: BuildGasInjProd(prod, inj, prodWells, injWells)},
			models.NamedFigure{Name: "oil_inj_prod", Figure: BuildOilInjProd(prod, inj, prodWells, injWells)},
		)
	} else if len(injWells) > 0 {
		figures = append(figures,
			models.NamedFigure{Name: "water_inj_prod", Figure: BuildWaterInjProd(prod, inj, prodWells, injWells)},
		)
	}
	if len(prodWells) > 0 {
		figures = append(figures,
			models.NamedFigure{Name: "oil_water_prod", Figure: BuildOilWaterProd(prod, prodWells)},
			models.NamedFigure{Name: "gas_water_prod", Figure: BuildGasWaterProd(prod, prodWells)},
		)
	}
	return figures, nil
}

// snapshot 取出三个表，未齐全时返回 ErrNotReady
func (s *DashboardService) snapshot() (*dataset.WellList, *dataset.Production, *dataset.Injection, error) {
	wl, prod, inj := s.repo.Snapshot()
	if wl == nil || prod == nil || inj == nil {
		return nil, nil, nil, ErrNotReady
	}
	return wl, prod, inj, nil
}

// newRNG 每次准备数据用新的随机源，偏移不跨请求保留
// 配置了 JITTER_SEED 时可复现（测试/排查用）
func (s *DashboardService) newRNG() *rand.Rand {
	seed := s.cfg.JitterSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
