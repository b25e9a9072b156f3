package main

import (
	"bufio"
	"bytes"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/jhoicas/portal-rdp/internal/application/dto"
)

// chassisLaptop tipos SMBIOS de chasis portátil (notebook, laptop, sub notebook, convertible...).
var chassisLaptop = map[int]bool{8: true, 9: true, 10: true, 14: true, 30: true, 31: true, 32: true}

// Collector lee el hardware local desde /proc y /sys. El Fs permite probar con un árbol en memoria.
type Collector struct {
	fs afero.Fs
}

func NewCollector(fs afero.Fs) *Collector {
	return &Collector{fs: fs}
}

// Collect arma la solicitud de censo. Los campos que no se pueden leer quedan vacíos.
func (c *Collector) Collect(hostname, user string) dto.CensusRequest {
	disk, diskSerial := c.primaryDisk()
	return dto.CensusRequest{
		Marca:               c.dmi("sys_vendor"),
		Modelo:              c.dmi("product_name"),
		NumeroSerie:         c.dmi("product_serial"),
		MemoriaRAM:          c.memory(),
		DiscoDuro:           disk,
		SerieDiscoDuro:      diskSerial,
		SistemaOperativo:    c.osName(),
		Procesador:          c.cpuModel(),
		NombreUsuarioEquipo: user,
		TipoEquipo:          c.equipmentType(),
		NombreEquipo:        hostname,
	}
}

func (c *Collector) read(p string) string {
	b, err := afero.ReadFile(c.fs, p)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func (c *Collector) dmi(name string) string {
	return c.read(path.Join("/sys/class/dmi/id", name))
}

func (c *Collector) cpuModel() string {
	return parseCPUModel([]byte(c.read("/proc/cpuinfo")))
}

func (c *Collector) memory() string {
	kb := parseMemTotalKB([]byte(c.read("/proc/meminfo")))
	if kb == 0 {
		return ""
	}
	// MemTotal excluye lo reservado por el kernel; redondear a GiB da la capacidad instalada.
	return fmt.Sprintf("%d GB", (kb+512*1024)/(1024*1024))
}

func (c *Collector) osName() string {
	return parseOSRelease([]byte(c.read("/etc/os-release")))
}

func (c *Collector) equipmentType() string {
	code, err := strconv.Atoi(c.dmi("chassis_type"))
	if err != nil {
		return ""
	}
	if chassisLaptop[code] {
		return "Laptop"
	}
	return "Desktop"
}

// primaryDisk primer disco físico en orden alfabético (se omiten loop, ram y zram).
func (c *Collector) primaryDisk() (size, serial string) {
	entries, err := afero.ReadDir(c.fs, "/sys/block")
	if err != nil {
		return "", ""
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		n := e.Name()
		if strings.HasPrefix(n, "loop") || strings.HasPrefix(n, "ram") || strings.HasPrefix(n, "zram") {
			continue
		}
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		sectors, err := strconv.ParseInt(c.read(path.Join("/sys/block", n, "size")), 10, 64)
		if err != nil || sectors == 0 {
			continue
		}
		// size siempre se expresa en sectores de 512 bytes
		return formatGB(sectors * 512), c.read(path.Join("/sys/block", n, "device/serial"))
	}
	return "", ""
}

func parseCPUModel(cpuinfo []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(cpuinfo))
	for sc.Scan() {
		key, val, ok := strings.Cut(sc.Text(), ":")
		if !ok {
			continue
		}
		if strings.TrimSpace(key) == "model name" {
			return strings.TrimSpace(val)
		}
	}
	return ""
}

func parseMemTotalKB(meminfo []byte) int64 {
	sc := bufio.NewScanner(bytes.NewReader(meminfo))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) >= 2 && fields[0] == "MemTotal:" {
			n, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				return 0
			}
			return n
		}
	}
	return 0
}

func parseOSRelease(data []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		key, val, ok := strings.Cut(sc.Text(), "=")
		if ok && key == "PRETTY_NAME" {
			return strings.Trim(val, `"'`)
		}
	}
	return ""
}

// formatGB redondea a GB decimales, como el fabricante rotula los discos.
func formatGB(n int64) string {
	return fmt.Sprintf("%d GB", (n+500_000_000)/1_000_000_000)
}
