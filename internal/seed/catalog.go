package seed

// First-year curriculum catalog. Subjects are declared against the short
// branch codes used in USNs; the EEE-stream branches carry their own subject
// lists for both cycles. "ALL" expands to every branch.

type catalogSubject struct {
	Code     string
	Name     string
	Credits  int
	Branches []string
}

var eeStreamBranches = map[string]bool{"EE": true, "EC": true, "ET": true, "EI": true}

var cycleSubjects = map[string][]catalogSubject{
	"P": {
		{Code: "AMC1", Name: "Applied Mathematics-I (CV Stream)", Credits: 4, Branches: []string{"CV"}},
		{Code: "AMS1", Name: "Applied Mathematics-I (CSE Stream)", Credits: 4, Branches: []string{"CS", "IS", "CI", "BT"}},
		{Code: "AMM1", Name: "Applied Mathematics-I (ME Stream)", Credits: 4, Branches: []string{"ME", "IM", "CH"}},
		{Code: "APC", Name: "Physics for Sustainable Structural System", Credits: 4, Branches: []string{"CV"}},
		{Code: "APS", Name: "Quantum Physics and Applications", Credits: 4, Branches: []string{"CS", "IS", "CI", "BT"}},
		{Code: "APM", Name: "Physics of Materials", Credits: 4, Branches: []string{"ME", "IM", "CH"}},
		{Code: "PSC1", Name: "Building Materials and Concrete Technology", Credits: 3, Branches: []string{"CV"}},
		{Code: "PSC5", Name: "Structured Programming in C", Credits: 3, Branches: []string{"CS", "IS", "CI"}},
		{Code: "PSC6", Name: "Elements of Biotechnology and Biomimetics", Credits: 3, Branches: []string{"BT"}},
		{Code: "PSC2", Name: "Elements of Mechanical Engineering", Credits: 3, Branches: []string{"ME", "IM", "CH"}},
		{Code: "ESCO6", Name: "Introduction to Electrical Engineering", Credits: 3, Branches: []string{"CV"}},
		{Code: "ESCO7", Name: "Introduction to Electronics & Communication Engineering", Credits: 3, Branches: []string{"CS", "IS", "CI", "ME", "IM"}},
		{Code: "ESCO9", Name: "Essentials of Information Technology", Credits: 3, Branches: []string{"BT"}},
		{Code: "ETC13", Name: "Introduction to AI and Applications", Credits: 3, Branches: []string{"ALL"}},
		{Code: "PSCL1", Name: "Building Materials Lab", Credits: 1, Branches: []string{"CV"}},
		{Code: "PSCL2", Name: "Elements of Mechanical Engineering Lab", Credits: 1, Branches: []string{"ME", "IM", "CH"}},
		{Code: "PSCL5", Name: "C Programming Lab", Credits: 1, Branches: []string{"CS", "IS", "CI"}},
		{Code: "PSCL6", Name: "Elements of Biotechnology Lab", Credits: 1, Branches: []string{"BT"}},
		{Code: "SDC1", Name: "Innovation and Design Thinking Lab", Credits: 1, Branches: []string{"ALL"}},
		{Code: "CC03_CC04", Name: "Balake Kannada / Samskruthika Kannada", Credits: 1, Branches: []string{"ALL"}},
		{Code: "CC09", Name: "Soft Skills", Credits: 0, Branches: []string{"ALL"}},
	},
	"C": {
		{Code: "AMC2", Name: "Applied Mathematics-II (CV Stream)", Credits: 4, Branches: []string{"CV"}},
		{Code: "AMS2", Name: "Applied Mathematics-II (CSE Stream)", Credits: 4, Branches: []string{"CS", "IS", "CI", "BT"}},
		{Code: "AMM2", Name: "Applied Mathematics-II (ME Stream)", Credits: 4, Branches: []string{"ME", "IM", "CH"}},
		{Code: "ACC", Name: "Applied Chemistry for Sustainable Structures and Material Design", Credits: 4, Branches: []string{"CV"}},
		{Code: "ACS", Name: "Applied Chemistry for Smart Systems", Credits: 4, Branches: []string{"CS", "IS", "CI", "BT"}},
		{Code: "ACM", Name: "Applied Chemistry for Advanced Metal Protection and Sustainable Energy Systems", Credits: 4, Branches: []string{"ME", "IM", "CH"}},
		{Code: "CAEDC", Name: "Computer-Aided Engineering Drawing (CV Stream)", Credits: 3, Branches: []string{"CV"}},
		{Code: "CAEDS", Name: "Computer-Aided Engineering Drawing (CSE Stream)", Credits: 3, Branches: []string{"CS", "IS", "CI", "BT"}},
		{Code: "CAEDM", Name: "Computer-Aided Engineering Drawing (ME Stream)", Credits: 3, Branches: []string{"ME", "IM", "CH"}},
		{Code: "PLC5", Name: "Introduction to C Programming", Credits: 4, Branches: []string{"CV", "ME", "IM", "CH"}},
		{Code: "PLC6", Name: "Python Programming", Credits: 4, Branches: []string{"CS", "IS", "CI", "BT"}},
		{Code: "ESCO11", Name: "Applied Mechanics", Credits: 3, Branches: []string{"CV", "ME"}},
		{Code: "ESCO6", Name: "Introduction to Electrical Engineering", Credits: 3, Branches: []string{"IS"}},
		{Code: "ESCO9", Name: "Essentials of Information Technology", Credits: 3, Branches: []string{"IM"}},
		{Code: "CC08", Name: "Communication Skills", Credits: 1, Branches: []string{"ALL"}},
		{Code: "CC10", Name: "Indian Constitution and Engineering Ethics", Credits: 0, Branches: []string{"ALL"}},
		{Code: "SDC2", Name: "Interdisciplinary Project-Based Learning", Credits: 1, Branches: []string{"ALL"}},
	},
}

// The EEE-stream branches follow their own subject lists in both cycles.
var eeStreamCycleSubjects = map[string][]catalogSubject{
	"P": {
		{Code: "AME1", Name: "Applied Mathematics-I (EEE Stream)", Credits: 4, Branches: []string{"EE", "EC", "ET", "EI"}},
		{Code: "ACE", Name: "Applied Chemistry for Emerging Electronics and Futuristic Devices", Credits: 4, Branches: []string{"EE", "EC", "ET", "EI"}},
		{Code: "CAEDEE", Name: "Computer-Aided Engineering Drawing (EEE Stream)", Credits: 3, Branches: []string{"EE"}},
		{Code: "CAEDEC", Name: "Computer-Aided Engineering Drawing (ECE Stream)", Credits: 3, Branches: []string{"EC", "ET", "EI"}},
		{Code: "ESCO7", Name: "Introduction to Electronics & Communication Engineering", Credits: 3, Branches: []string{"EE"}},
		{Code: "ESCO6", Name: "Introduction to Electrical Engineering", Credits: 3, Branches: []string{"EC", "ET", "EI"}},
		{Code: "PLC5", Name: "Introduction to C Programming", Credits: 4, Branches: []string{"EE", "EC", "ET", "EI"}},
		{Code: "CC08", Name: "Communication Skills", Credits: 1, Branches: []string{"EE", "EC", "ET", "EI"}},
		{Code: "CC10", Name: "Indian Constitution and Engineering Ethics", Credits: 0, Branches: []string{"EE", "EC", "ET", "EI"}},
		{Code: "SDC1", Name: "Innovation and Design Thinking Lab", Credits: 1, Branches: []string{"EE", "EC", "ET", "EI"}},
	},
	"C": {
		{Code: "AME2", Name: "Applied Mathematics-II (EEE Stream)", Credits: 4, Branches: []string{"EE", "EC", "ET", "EI"}},
		{Code: "APEE", Name: "Electrical Engineering Materials", Credits: 4, Branches: []string{"EE"}},
		{Code: "APEC", Name: "Quantum Physics and Electronics Sensors", Credits: 4, Branches: []string{"EC", "ET", "EI"}},
		{Code: "PSC3", Name: "Basics of Electrical Engineering", Credits: 3, Branches: []string{"EE"}},
		{Code: "PSC4", Name: "Fundamentals of Electronics and Communication Engineering", Credits: 3, Branches: []string{"EC", "ET", "EI"}},
		{Code: "ESCO9", Name: "Essentials of Information Technology", Credits: 3, Branches: []string{"EE", "EC", "ET", "EI"}},
		{Code: "ETC13", Name: "Introduction to AI and Applications", Credits: 3, Branches: []string{"EE", "EC", "ET", "EI"}},
		{Code: "PSCL3", Name: "Basic Electrical Laboratory", Credits: 1, Branches: []string{"EE"}},
		{Code: "PSCL4", Name: "Fundamentals of Electronics & Communication Engineering Lab", Credits: 1, Branches: []string{"EC", "ET", "EI"}},
		{Code: "CC09", Name: "Soft Skills", Credits: 0, Branches: []string{"EE", "EC", "ET", "EI"}},
		{Code: "CC03_CC04", Name: "Balake Kannada / Samskruthika Kannada", Credits: 1, Branches: []string{"EE", "EC", "ET", "EI"}},
		{Code: "SDC2", Name: "Interdisciplinary Project-Based Learning", Credits: 1, Branches: []string{"EE", "EC", "ET", "EI"}},
	},
}

// Module titles for subjects that publish a syllabus breakdown; everything
// else falls back to "Module {n}".
var moduleTitlesByCode = map[string][]string{
	"AMC1": {
		"Polar Curves and Curvature",
		"Series Expansion, Indeterminate Forms and Multivariable Calculus",
		"Ordinary Differential Equations of First Order",
		"Ordinary Differential Equations of Higher Order",
		"Linear Algebra",
	},
	"AMS1": {
		"Calculus",
		"Vector Calculus",
		"System of Linear Equations, Eigen Values & Eigen Vectors",
		"Vector Space",
		"Linear Transformation",
	},
	"AMM1": {
		"Polar Curves and Curvature",
		"Series Expansion, Indeterminate Forms and Multivariable Calculus",
		"Ordinary Differential Equations of First Order",
		"Ordinary Differential Equations of Higher Order",
		"Linear Algebra",
	},
	"AME1": {
		"Differential Calculus",
		"Power Series Expansions, Indeterminate Forms and Multivariable Calculus",
		"Ordinary Differential Equations (ODE) of First Order and First Degree and Nonlinear ODE",
		"Ordinary Differential Equations of Higher Order",
		"Linear Algebra",
	},
	"AMC2": {
		"Integral Calculus",
		"Partial Differential Equations",
		"Vector Calculus",
		"Numerical Methods - 1",
		"Numerical Methods - 2",
	},
	"AMS2": {
		"Introduction to Numerical Methods",
		"Numerical Solutions for System of Linear Equations",
		"Interpolation",
		"Differential Equations of First and Higher Order",
		"Numerical Integration and Numerical Solution of Differential Equations",
	},
	"AMM2": {
		"Integral Calculus",
		"Partial Differential Equations (PDE)",
		"Vector Calculus",
		"Numerical Methods - 1",
		"Numerical Methods - 2",
	},
	"AME2": {
		"Integral Calculus and its Applications",
		"Vector Calculus and its Applications",
		"Numerical Methods - 1",
		"Numerical Methods - 2",
		"Laplace Transform",
	},
	"APC": {
		"Elasticity",
		"Oscillations & Waves",
		"Acoustics, Radiometry and Photometry",
		"Non-Destructive Testing and Shock Waves",
		"Material Characterisation and Instrumentation Techniques",
	},
	"APS": {
		"Quantum Mechanics",
		"Electrical Properties of Metals & Semiconductors",
		"Superconductivity",
		"Photonics",
		"Quantum Computing",
	},
	"PLC5": {
		"Introduction to C",
		"Decision Control and Looping Statements",
		"Functions & Array",
		"Applications of Arrays and Introduction to Strings",
		"Strings, Pointer and Structures",
	},
	"PLC6": {
		"Python Basics and Flow Control",
		"Functions and Lists",
		"Dictionaries and Structuring Data and Manipulating Strings",
		"Object-Oriented Programming and Inheritance",
		"Reading and Writing Files and Organizing Files",
	},
	"ETC13": {
		"Introduction to Artificial Intelligence",
		"Machine Learning",
		"Knowledge Representation and Prompt Engineering",
		"Current Trends in Artificial Intelligence",
		"Applications of AI",
	},
	"ESCO11": {
		"Fundamentals of Mechanics and Coplanar Concurrent Forces",
		"Coplanar Non-Concurrent Forces",
		"Centroid and Moment of Inertia of Plane Sections",
		"Centre of Gravity and Mass Moment of Inertia, Friction",
		"Dynamics, Kinematics and Projectiles, Kinetics",
	},
}
