package repository

import (
	"sync"
	"time"

	"github.com/ghanizadeh/wellProdInjAnalysis/internal/dataset"
)

// Workspace 当前工作区的内存数据仓库
// 数据全部是瞬态的：上传即替换，无任何落盘，派生结果每次请求重新计算
type Workspace struct {
	mu         sync.RWMutex
	wellList   *dataset.WellList
	production *dataset.Production
	injection  *dataset.Injection
	updatedAt  time.Time
}

// NewWorkspace 创建空工作区
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// SetWellList 替换井列表
func (w *Workspace) SetWellList(wl *dataset.WellList) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.wellList = wl
	w.updatedAt = time.Now()
}

// SetProduction 替换生产历史
func (w *Workspace) SetProduction(p *dataset.Production) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.production = p
	w.updatedAt = time.Now()
}

// SetInjection 替换注水历史
func (w *Workspace) SetInjection(inj *dataset.Injection) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.injection = inj
	w.updatedAt = time.Now()
}

// Snapshot 取出三个表的当前引用，未上传的为 nil
// 表内容一经存入不再修改，调用方可以直接读取
func (w *Workspace) Snapshot() (*dataset.WellList, *dataset.Production, *dataset.Injection) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.wellList, w.production, w.injection
}

// Complete 三个表是否齐全
func (w *Workspace) Complete() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.wellList != nil && w.production != nil && w.injection != nil
}

// Counts 各表行数（未上传的为 -1）
func (w *Workspace) Counts() (wells, production, injection int) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	wells, production, injection = -1, -1, -1
	if w.wellList != nil {
		wells = len(w.wellList.Rows)
	}
	if w.production != nil {
		production = len(w.production.Rows)
	}
	if w.injection != nil {
		injection = len(w.injection.Rows)
	}
	return
}

// UpdatedAt 最近一次数据变更时间
func (w *Workspace) UpdatedAt() time.Time {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.updatedAt
}

// Reset 清空工作区
func (w *Workspace) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.wellList = nil
	w.production = nil
	w.injection = nil
	w.updatedAt = time.Now()
}
