package console

import (
	"github.com/klwxsrx/kahuna-console/internal/navigation/app/guard"
	"github.com/klwxsrx/kahuna-console/internal/navigation/domain"
)

const (
	RoleAdmin    = "admin"
	RoleUser     = "user"
	RoleVIPAlpha = "vip_alpha"
)

func NewRouteTable() (*domain.RouteTable, error) {
	return domain.NewRouteTable(routeConfigs()...)
}

func routeConfigs() []domain.RouteConfig {
	return []domain.RouteConfig{
		{Path: guard.DefaultLoginPath, Name: "login", Public: true},
		{Path: "/", RedirectTo: guard.DefaultHomePath},
		{Path: guard.DefaultHomePath, Name: "home"},
		{
			Path:  "/setting",
			Name:  "setting",
			Roles: []string{RoleAdmin, RoleUser},
			Children: []domain.RouteConfig{
				{Path: "characterSetting", Name: "userSetting", Roles: []string{RoleUser}},
				{Path: "industrySetting", Name: "industrySetting", Roles: []string{RoleAdmin, RoleUser}},
				{Path: "accountSetting", Name: "accountSetting", Roles: []string{RoleUser}},
			},
		},
		{
			Path: "/industry",
			Name: "industry",
			Children: []domain.RouteConfig{
				{Path: "overview", Name: "overview"},
				{Path: "assetView", Name: "assetView", Roles: []string{RoleVIPAlpha}},
				{Path: "industryPlan", Name: "industryPlan"},
				{Path: "flowDecomposition", Name: "flowDecomposition"},
				{Path: "workflow", Name: "workflow"},
				{Path: "testPage", Name: "testPage"},
			},
		},
		{Path: "/corpShop", Name: "corpShop"},
		{Path: "/utils", Name: "utils"},
		{
			Path: "/admin",
			Name: "admin",
			Children: []domain.RouteConfig{
				{Path: "userManagement", Name: "userManagement"},
				{Path: "permissionManagement", Name: "permissionManagement"},
				{Path: "inviteCodeManagement", Name: "inviteCodeManagement"},
			},
		},
		{Path: guard.DefaultForbiddenPath, Name: "forbidden", Public: true},
		{Path: "/setting/characterSetting/auth/close", Name: "characterAuthClose", Public: true},
	}
}
