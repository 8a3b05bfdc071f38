// Package cost - infrastructure component calculators
package cost

import (
	"github.com/shopspring/decimal"

	"gomeet-cost/core/types"
)

// autoScalingBufferRate reserves headroom at half the base compute cost.
var autoScalingBufferRate = decimal.NewFromFloat(0.5)

// SFU prices the media-routing cluster: base compute, per-node storage,
// and the auto-scaling buffer.
func (e *Engine) SFU() types.SFUCost {
	cluster := e.Topology.SFU

	base := e.InstanceCost(cluster.Class, cluster.Nodes)
	storage := e.StorageCost(cluster.StorageGB * float64(cluster.Nodes))
	buffer := base.MonthlyCost.Mul(autoScalingBufferRate)

	total := base.MonthlyCost.Add(storage.MonthlyCost).Add(buffer)

	return types.SFUCost{
		Component:         types.ComponentSFU,
		BaseCost:          base,
		StorageCost:       storage,
		AutoScalingBuffer: buffer,
		TotalMonthly:      total,
		TotalAnnual:       types.Annual(total),
	}
}

// APIServices prices each stateless service tier.
func (e *Engine) APIServices() types.ServicesCost {
	services := make([]types.InstanceCost, 0, len(e.Topology.Services))
	total := decimal.Zero

	for _, tier := range e.Topology.Services {
		line := e.InstanceCost(tier.Class, tier.Replicas)
		line.Service = tier.Name
		services = append(services, line)
		total = total.Add(line.MonthlyCost)
	}

	return types.ServicesCost{
		Component:    types.ComponentServices,
		Services:     services,
		TotalMonthly: total,
		TotalAnnual:  types.Annual(total),
	}
}

// Database prices the PostgreSQL layer. Primary storage is a single
// volume; replica storage is per node.
func (e *Engine) Database() types.DatabaseCost {
	db := e.Topology.Database

	primary := e.InstanceCost(db.Primary.Class, db.Primary.Nodes)
	replicas := e.InstanceCost(db.Replicas.Class, db.Replicas.Nodes)
	pgbouncer := e.InstanceCost(db.PgBouncer.Class, db.PgBouncer.Nodes)

	totalStorage := db.Primary.StorageGB + db.Replicas.StorageGB*float64(db.Replicas.Nodes)
	storage := e.StorageCost(totalStorage)

	total := primary.MonthlyCost.
		Add(replicas.MonthlyCost).
		Add(pgbouncer.MonthlyCost).
		Add(storage.MonthlyCost)

	return types.DatabaseCost{
		Component:     types.ComponentDatabase,
		PrimaryCost:   primary,
		ReplicasCost:  replicas,
		PgBouncerCost: pgbouncer,
		StorageCost:   storage,
		TotalMonthly:  total,
		TotalAnnual:   types.Annual(total),
	}
}

// Redis prices the cache cluster; storage is per node on both groups.
func (e *Engine) Redis() types.RedisCost {
	cluster := e.Topology.Redis

	masters := e.InstanceCost(cluster.Masters.Class, cluster.Masters.Nodes)
	replicas := e.InstanceCost(cluster.Replicas.Class, cluster.Replicas.Nodes)

	totalStorage := cluster.Masters.StorageGB*float64(cluster.Masters.Nodes) +
		cluster.Replicas.StorageGB*float64(cluster.Replicas.Nodes)
	storage := e.StorageCost(totalStorage)

	total := masters.MonthlyCost.Add(replicas.MonthlyCost).Add(storage.MonthlyCost)

	return types.RedisCost{
		Component:    types.ComponentRedis,
		MastersCost:  masters,
		ReplicasCost: replicas,
		StorageCost:  storage,
		TotalMonthly: total,
		TotalAnnual:  types.Annual(total),
	}
}

// Gateway prices the edge: traefik compute plus flat managed LB fees.
func (e *Engine) Gateway() types.GatewayCost {
	gw := e.Topology.Gateway

	traefik := e.InstanceCost(gw.Traefik.Class, gw.Traefik.Nodes)
	lb := e.Book.LoadBalancer.Mul(decimal.NewFromInt(int64(gw.LoadBalancers)))

	total := traefik.MonthlyCost.Add(lb)

	return types.GatewayCost{
		Component:        types.ComponentGateway,
		TraefikCost:      traefik,
		LoadBalancerCost: lb,
		TotalMonthly:     total,
		TotalAnnual:      types.Annual(total),
	}
}

// Monitoring prices the monitoring stack. Component storage is a single
// volume per component, not per node.
func (e *Engine) Monitoring() types.MonitoringCost {
	lines := make([]types.MonitoringLine, 0, len(e.Topology.Monitoring))
	total := decimal.Zero

	for _, comp := range e.Topology.Monitoring {
		instances := e.InstanceCost(comp.Class, comp.Nodes)
		storage := e.StorageCost(comp.StorageGB)
		monthly := instances.MonthlyCost.Add(storage.MonthlyCost)

		lines = append(lines, types.MonitoringLine{
			ComponentName: comp.Name,
			Instances:     instances,
			Storage:       storage,
			MonthlyCost:   monthly,
		})
		total = total.Add(monthly)
	}

	return types.MonitoringCost{
		Component:    types.ComponentMonitoring,
		Components:   lines,
		TotalMonthly: total,
		TotalAnnual:  types.Annual(total),
	}
}
