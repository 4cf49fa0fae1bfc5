package molarmass

// Element is an entry in a mass table.
type Element struct {
	// Number is the atomic number, or 0 for entries that are not elements of
	// the periodic table.
	Number int
	// Symbol is the element symbol, e.g. "Na".
	Symbol string
	// Name is the English name of the element.
	Name string
	// Weight is the standard atomic weight in grams per mole, as decimal text
	// so that it can be read to any precision.
	Weight string
}

// Table resolves element symbols. A Table must not change after it is first
// used to parse a formula.
type Table interface {
	// Lookup returns the element with the given symbol, if there is one.
	Lookup(symbol string) (Element, bool)
}

type table map[string]Element

func (t table) Lookup(symbol string) (Element, bool) {
	el, ok := t[symbol]
	return el, ok
}

func newTable(els []Element) table {
	t := make(table, len(els))
	for _, el := range els {
		t[el.Symbol] = el
	}
	return t
}

// Standard is the default table. It holds elements 1 through 103.
var Standard Table = newTable(periodic[:])

// Elements returns the elements in Standard in order of atomic number.
func Elements() []Element {
	return append(([]Element)(nil), periodic[:]...)
}

var periodic = [...]Element{
	{1, "H", "Hydrogen", "1.00794"},
	{2, "He", "Helium", "4.002602"},
	{3, "Li", "Lithium", "6.941"},
	{4, "Be", "Beryllium", "9.01218"},
	{5, "B", "Boron", "10.811"},
	{6, "C", "Carbon", "12.011"},
	{7, "N", "Nitrogen", "14.00674"},
	{8, "O", "Oxygen", "15.9994"},
	{9, "F", "Fluorine", "18.998403"},
	{10, "Ne", "Neon", "20.1797"},
	{11, "Na", "Sodium", "22.989768"},
	{12, "Mg", "Magnesium", "24.305"},
	{13, "Al", "Aluminium", "26.981539"},
	{14, "Si", "Silicon", "28.0855"},
	{15, "P", "Phosphorus", "30.973762"},
	{16, "S", "Sulfur", "32.066"},
	{17, "Cl", "Chlorine", "35.4527"},
	{18, "Ar", "Argon", "39.948"},
	{19, "K", "Potassium", "39.0983"},
	{20, "Ca", "Calcium", "40.078"},
	{21, "Sc", "Scandium", "44.95591"},
	{22, "Ti", "Titanium", "47.88"},
	{23, "V", "Vanadium", "50.9415"},
	{24, "Cr", "Chromium", "51.9961"},
	{25, "Mn", "Manganese", "54.93805"},
	{26, "Fe", "Iron", "55.847"},
	{27, "Co", "Cobalt", "58.9332"},
	{28, "Ni", "Nickel", "58.6934"},
	{29, "Cu", "Copper", "63.546"},
	{30, "Zn", "Zinc", "65.39"},
	{31, "Ga", "Gallium", "69.723"},
	{32, "Ge", "Germanium", "72.61"},
	{33, "As", "Arsenic", "74.92159"},
	{34, "Se", "Selenium", "78.96"},
	{35, "Br", "Bromine", "79.904"},
	{36, "Kr", "Krypton", "83.8"},
	{37, "Rb", "Rubidium", "85.4678"},
	{38, "Sr", "Strontium", "87.62"},
	{39, "Y", "Yttrium", "88.90585"},
	{40, "Zr", "Zirconium", "91.224"},
	{41, "Nb", "Niobium", "92.90638"},
	{42, "Mo", "Molybdenum", "95.94"},
	{43, "Tc", "Technetium", "97.9072"},
	{44, "Ru", "Ruthenium", "101.07"},
	{45, "Rh", "Rhodium", "102.9055"},
	{46, "Pd", "Palladium", "106.42"},
	{47, "Ag", "Silver", "107.8682"},
	{48, "Cd", "Cadmium", "112.411"},
	{49, "In", "Indium", "114.818"},
	{50, "Sn", "Tin", "118.71"},
	{51, "Sb", "Antimony", "121.76"},
	{52, "Te", "Tellurium", "127.6"},
	{53, "I", "Iodine", "126.90447"},
	{54, "Xe", "Xenon", "131.29"},
	{55, "Cs", "Caesium", "132.90543"},
	{56, "Ba", "Barium", "137.327"},
	{57, "La", "Lanthanum", "138.9055"},
	{58, "Ce", "Cerium", "140.115"},
	{59, "Pr", "Praseodymium", "140.90765"},
	{60, "Nd", "Neodymium", "144.24"},
	{61, "Pm", "Promethium", "144.9127"},
	{62, "Sm", "Samarium", "150.36"},
	{63, "Eu", "Europium", "151.965"},
	{64, "Gd", "Gadolinium", "157.25"},
	{65, "Tb", "Terbium", "158.92534"},
	{66, "Dy", "Dysprosium", "162.5"},
	{67, "Ho", "Holmium", "164.93032"},
	{68, "Er", "Erbium", "167.26"},
	{69, "Tm", "Thulium", "168.93421"},
	{70, "Yb", "Ytterbium", "173.04"},
	{71, "Lu", "Lutetium", "174.967"},
	{72, "Hf", "Hafnium", "178.49"},
	{73, "Ta", "Tantalum", "180.9479"},
	{74, "W", "Tungsten", "183.84"},
	{75, "Re", "Rhenium", "186.207"},
	{76, "Os", "Osmium", "190.23"},
	{77, "Ir", "Iridium", "192.22"},
	{78, "Pt", "Platinum", "195.08"},
	{79, "Au", "Gold", "196.96654"},
	{80, "Hg", "Mercury", "200.59"},
	{81, "Tl", "Thallium", "204.3833"},
	{82, "Pb", "Lead", "207.2"},
	{83, "Bi", "Bismuth", "208.98037"},
	{84, "Po", "Polonium", "208.9824"},
	{85, "At", "Astatine", "209.9871"},
	{86, "Rn", "Radon", "222.0176"},
	{87, "Fr", "Francium", "223.0197"},
	{88, "Ra", "Radium", "226.0254"},
	{89, "Ac", "Actinium", "227.0278"},
	{90, "Th", "Thorium", "232.0381"},
	{91, "Pa", "Protactinium", "231.03588"},
	{92, "U", "Uranium", "238.0289"},
	{93, "Np", "Neptunium", "237.048"},
	{94, "Pu", "Plutonium", "244.0642"},
	{95, "Am", "Americium", "243.0614"},
	{96, "Cm", "Curium", "247.0703"},
	{97, "Bk", "Berkelium", "247.0703"},
	{98, "Cf", "Californium", "251.0796"},
	{99, "Es", "Einsteinium", "252.083"},
	{100, "Fm", "Fermium", "257.0951"},
	{101, "Md", "Mendelevium", "258.1"},
	{102, "No", "Nobelium", "259.1009"},
	{103, "Lr", "Lawrencium", "262.11"},
}
