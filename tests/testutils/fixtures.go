package testutils

import (
	"time"

	"nmap2csv/models"

	"github.com/google/uuid"
)

func CreateTestFinding() models.PortFinding {
	return models.PortFinding{
		Port:     "80",
		Protocol: "tcp",
		State:    "open",
		Service:  "http",
		Version:  "Apache httpd 2.4.41",
		Enum:     "N",
	}
}

func CreateTestScanImport() *models.ScanImport {
	return &models.ScanImport{
		ID:          uuid.New().String(),
		InputPath:   "./enum/nmap_sv_sc.nmap",
		OutputPath:  "./enum/surface_map.csv",
		RecordCount: 3,
		OnlyOpen:    true,
		Schema:      models.SchemaAnnotated,
		CreatedAt:   time.Now(),
	}
}

// SampleScanOutput is a realistic plain-text nmap fragment used by
// extraction and integration tests.
const SampleScanOutput = `Nmap scan report for target.local (10.10.10.5)
Host is up (0.031s latency).

PORT     STATE    SERVICE      VERSION
22/tcp   open     ssh          OpenSSH 8.2p1 Ubuntu 4ubuntu0.5
80/tcp   open     http         Apache httpd 2.4.41 ((Ubuntu))
| http-title: Welcome
|_  Requested resource was /login
111/tcp  filtered rpcbind
445/tcp  closed   microsoft-ds
3306/tcp open     mysql        MySQL 5.7.38

Service detection performed. Please report any incorrect results.
`
